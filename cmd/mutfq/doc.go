// 19 Oct 2026

/*

Mutfq makes noisy copies of fastq files by changing a fraction of the
bases in every read. Only substitutions are made, the wildcard N is left
alone and quality values are kept.
Usage:
	mutfq -r ratio -f file1.fastq.gz,file2_R1.fq [options]
will write file1_ratio_0.1.fastq.gz and file2_ratio_0.1_R1.fq to the
output directory.

Flags:
	-r, --ratio
		fraction of each read to mutate, 0 < ratio <= 1
	-f, --fastq
		comma separated list of fastq files, gzip or snappy compressed or not
	-t, --thread
		number of workers, default 4
	-p, --pos
		append the mutated positions to each read's description
	-o, --outpath
		output directory, made if necessary, default ./
	--strict
		give up on a file at the first broken record, rather than skip it
	--report, --plot
		write a table or a picture of where mutations happened
	--dry-run
		only check the options and say what would be written
	--config
		read options from a yaml, toml or json file

Every option can also be set by an environment variable such as
MUTFQ_RATIO or MUTFQ_DRY_RUN.

*/
package main

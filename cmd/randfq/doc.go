// 31 July 2020

/*
Randfq makes random fastq reads for testing mutfq.
Usage:

	randfq [options] fname nseq length

will generate nseq reads of length length and write them to fname.
A name of "-" means standard output. If fname ends in .gz or .sz,
the output is compressed.

Flags:

	-r
		random number seed
	-c
		description put after the ID of every read
	-n
		fraction of bases that are the wildcard N

Reads are called read0, read1, ... and qualities are random.
*/
package main

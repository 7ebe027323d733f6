package spectrum

// Bins lets tests look at how positions are grouped for the plot.
var Bins = (*Spectrum).bins

// Command scalogramify converts vendor accelerometer records (.aaa files)
// to time-frequency images (PNG).
//
// Every recognized record in the input directory is loaded, transformed
// and rendered as a pseudocolor surface: a continuous wavelet transform
// scalogram by default, or a short-time Fourier spectrogram with
// -renderer spectrogram.
//
// Usage:
//
//	scalogramify [-config file.yaml] [-input dir] [-output dir] [-renderer scalogram|spectrogram]
//
// Each input file <name>.aaa produces one image <name>.aaa.png in the
// output directory. Flags override the corresponding configuration file
// settings.
package main

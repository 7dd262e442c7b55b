// Package escpos drives an ESC/POS thermal receipt printer over a serial
// line.
//
// Printer implements domain.Sink. Each job opens the device, initialises the
// printer with ESC @, streams styled text and raster images, then feeds and
// cuts. The port opener is injectable so tests run against an in-memory
// port instead of hardware.
//
// Command subset used:
//
//	ESC @          initialise
//	ESC a n        alignment (0 left, 1 center)
//	GS ! n         character size (0x00 normal, 0x11 double width and height)
//	GS v 0 ...     raster bit image
//	ESC d n        print and feed n lines
//	GS V 0         full paper cut
package escpos

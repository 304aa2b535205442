// Package hcldesc loads interface descriptor files written in HCL and turns
// them into descriptor.Interface declarations. A descriptor file is the
// statically validated equivalent of the comment-based interface blocks that
// GIS scripting platforms embed at the top of their scripts:
//
//	name = "r.viewshed.points"
//
//	module {
//	  description = "Computes viewshed at vector points."
//	  keywords    = ["raster", "viewshed"]
//	}
//
//	option "elevation" {
//	  type        = "text"
//	  description = "Name of input elevation raster map"
//	  key_hint    = "name"
//	}
//
//	option "max_distance" {
//	  type    = "double"
//	  default = -1
//	}
//
//	flag "c" {
//	  description = "Consider the curvature of the earth"
//	}
package hcldesc

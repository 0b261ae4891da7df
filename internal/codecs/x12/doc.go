// Package x12 implements a structural codec for X12 interchanges.
//
// The codec knows the envelope (ISA/GS/ST ... SE/GE/IEA) but not the
// content grammar of any transaction set: body segments are carried as
// ordered tag/element records. A codec instance is bound to one routing
// key and rejects interchanges carrying a different version or type.
//
// Structured form:
//
//	{
//	  "isa": {"01": "00", ...},
//	  "functional_group": [{
//	    "gs": {"01": "IO", ..., "08": "004010"},
//	    "segments": [{
//	      "st": {"01": "310", "02": "35353"},
//	      "body": [{"tag": "B3", "elements": {"01": "", ...}}],
//	      "se": {"01": "4", "02": "35353"}
//	    }],
//	    "ge": {"01": "1", "02": "61716"}
//	  }],
//	  "iea": {"01": "1", "02": "000011566"}
//	}
package x12

// Package lplex reads linear programs written in the textual LP format and
// exposes them as an in-memory model of objectives, constraints and typed,
// bounded variables.
//
// The parsing entry point lives in the lpformat package:
//
//	f := lpformat.Read("model.lp")
//	if f.Err() != nil { ... }
//
// The model package holds the immutable records the parser produces, plus a
// deterministic binary serialization for caching parsed models.
package lplex

import (
	"github.com/blang/semver/v4"
)

// Version of the lplex library; embedded in serialized models.
var Version = semver.MustParse("0.2.0")

package parseline

import "github.com/ardnew/exl/value"

var zeroValue = value.Int(0)

func intValue(i int64) value.Value     { return value.Int(i) }
func floatValue(f float64) value.Value { return value.Float(f) }

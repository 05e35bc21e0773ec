package main

import (
	"sort"

	"go.uber.org/zap"
)

func errorField(err error) zap.Field {
	return zap.Error(err)
}

func sortedStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

//go:build !profile

package profiler

import "fmt"

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Dump() (string, error) { return "", fmt.Errorf("profiler: built without -tags profile") }

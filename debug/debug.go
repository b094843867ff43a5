package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Get    bool
	Set    bool
	Remove bool
	Copy   bool
	Queue  bool
	Schema bool
}

var d *debug

func init() {
	d = &debug{}
	d.Get = boolEnv("PTR_DEBUG_GET")
	d.Set = boolEnv("PTR_DEBUG_SET")
	d.Remove = boolEnv("PTR_DEBUG_REMOVE")
	d.Copy = boolEnv("PTR_DEBUG_COPY")
	d.Queue = boolEnv("PTR_DEBUG_QUEUE")
	d.Schema = boolEnv("PTR_DEBUG_SCHEMA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Get() bool {
	return d.Get
}
func Set() bool {
	return d.Set
}
func Remove() bool {
	return d.Remove
}
func Copy() bool {
	return d.Copy
}
func Queue() bool {
	return d.Queue
}
func Schema() bool {
	return d.Schema
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		Logf("%v\n", v)
		return
	}
	Logf("%s\n", d)
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

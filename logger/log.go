package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int32
	limiter int64
	filter  atomic.Value
	counter *hashmap.HashMap
	output  atomic.Value
)

func init() {
	counter = &hashmap.HashMap{}
	output.Store(log.New(os.Stderr, "", log.LstdFlags))
}

func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

func Level() int {
	return int(atomic.LoadInt32(&level))
}

// SetLimiter caps how many times an identical message is printed, 0 disables it.
func SetLimiter(l int) {
	atomic.StoreInt64(&limiter, int64(l))
}

func SetOutput(w io.Writer) {
	output.Store(log.New(w, "", log.LstdFlags))
}

func SetFilter(pattern string) error {
	if pattern == "" {
		filter.Store((*regexp.Regexp)(nil))
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter.Store(reg)
	return nil
}

func Println(v ...interface{}) {
	if Level() >= INFO {
		logger().Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	if Level() >= INFO {
		logger().Printf(format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if Level() < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	logger().Print(out)
}

func logger() *log.Logger {
	return output.Load().(*log.Logger)
}

func limiterAvailable(out string) bool {
	max := atomic.LoadInt64(&limiter)
	if max == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	return atomic.AddInt64(actual, 1) <= max
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	reg, _ := filter.Load().(*regexp.Regexp)
	if reg == nil || reg.MatchString(out) {
		return out
	}
	return ""
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/anaef/go-linear/script"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/str"
	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"
)

const prompt = "\033[31m»\033[0m "

var (
	evalString  = flag.String("eval", "", "List of statements to run, divided by a semicolon.")
	historyFile = flag.String("history", "/tmp/linear.history", "Path of the command history file.")
	logDebug    = flag.Bool("debug", false, "Enable debug logs.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func eval(env *script.Env, src string) {
	log.Debugf("eval %q", src)
	v, err := env.Run(src)
	if err != nil {
		fmt.Printf("%s\n", err)
		return
	}
	if v.IsDefined() {
		fmt.Printf("%v\n", v)
	}
}

func dispatch(env *script.Env, line string) bool {
	switch line {
	case ".help":
		fmt.Print("statements are JavaScript with the linear functions as globals\n" +
			".mem   report memory statistics\n" +
			".quit  leave\n")
	case ".mem":
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("alloc:%s sys:%s total:%s numgc:%d\n",
			humanize.Bytes(m.Alloc),
			humanize.Bytes(m.Sys),
			humanize.Bytes(memory.TotalMemory()),
			m.NumGC)
	case ".quit":
		return false
	default:
		eval(env, line)
	}
	return true
}

func main() {
	flag.Parse()

	if *logDebug {
		log.SetLevel(log.DebugLevel)
	}

	env := script.New()

	if *evalString != "" {
		for _, stmt := range str.SplitBy(*evalString, ";") {
			eval(env, stmt)
		}
		return
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     *historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else {
			ok := true
			for _, stmt := range str.SplitBy(line, ";") {
				if ok = dispatch(env, stmt); !ok {
					break
				}
			}
			if !ok {
				break
			}
		}
	}
}

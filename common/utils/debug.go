package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var (
	outputLock sync.Mutex
	output     io.Writer = os.Stdout
	verbose    bool
	hostname   string
)

func init() {
	if name, err := os.Hostname(); err == nil {
		hostname = name
	}
}

// SetDebugOutput redirects Debug and Verbose; it returns the previous writer.
func SetDebugOutput(w io.Writer) io.Writer {
	outputLock.Lock()
	defer outputLock.Unlock()

	previous := output
	output = w
	return previous
}

func SetVerbose(enabled bool) {
	outputLock.Lock()
	verbose = enabled
	outputLock.Unlock()
}

func IsVerbose() bool {
	outputLock.Lock()
	defer outputLock.Unlock()

	return verbose
}

func Debug(service string, message string) {
	write(service, message, nil)
}

func DebugWithContext(service string, message string, extra Context) {
	write(service, message, extra)
}

// Verbose logs like Debug, only when verbose mode is on.
func Verbose(service string, message string) {
	if IsVerbose() {
		write(service, message, nil)
	}
}

func write(service string, message string, extra Context) {
	context := make(Context, len(extra)+1)

	if hostname != "" {
		context["hostname"] = hostname
	}

	for k, v := range extra {
		context[k] = v
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	outputLock.Lock()
	fmt.Fprintln(output, string(data))
	outputLock.Unlock()
}

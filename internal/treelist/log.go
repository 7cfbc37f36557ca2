package treelist

import (
	"io"
	"log"
)

var debugLog = log.New(io.Discard, "[TREELIST] ", log.LstdFlags|log.Lshortfile)

// SetLogOutput directs the tree list debug log to w
func SetLogOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

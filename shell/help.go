package shell

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "play - play rounds of the current variant against the computer\n")
	io.WriteString(w, "new <classic|lizardspock> - switch to a built-in variant\n")
	io.WriteString(w, "load <path/to/variant.yaml> - compile a variant file on top of the current one\n")
	io.WriteString(w, "show - display the current variant's moves, inputs, and interactions\n")
	io.WriteString(w, "record - display the running win/loss/draw record\n")
	io.WriteString(w, "exit - quit\n")
}

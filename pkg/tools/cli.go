/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package tools

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmOperation asks s on w and reads the answer from r. Only "y"
// (any case) confirms.
func ConfirmOperation(r io.Reader, w io.Writer, s string) bool {
	reader := bufio.NewReader(r)
	fmt.Fprintf(w, "%s [y/N]: ", s)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(text)
	return strings.ToLower(text) == "y"
}

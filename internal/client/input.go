// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readSecret = term.ReadPassword
	isTerminal = term.IsTerminal
)

const codePrompt = "One-time code (https://my.remarkable.com/device/desktop/connect): "

// readCode asks for the pairing code. On a terminal the code is not echoed.
func (a *App) readCode() (string, error) {
	fmt.Fprint(a.out, codePrompt)

	if f, ok := a.in.(*os.File); ok && isTerminal(int(f.Fd())) {
		code, err := readSecret(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(code)), nil
	}

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

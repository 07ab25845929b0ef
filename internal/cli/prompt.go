// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-saforia/internal/config"
	"github.com/MKhiriev/go-saforia/internal/crypto"
)

// ViewerPasswordEnv, when set, is used instead of prompting for the viewer
// password.
const ViewerPasswordEnv = config.EnvPrefix + "VIEWER_PASSWORD"

// Prompter reads interactive input. Secrets are returned as byte slices so
// callers can zero them.
type Prompter interface {
	ReadSecret(prompt string) ([]byte, error)
	ReadLine(prompt string) (string, error)
}

type stdPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewStdPrompter prompts on stderr and reads stdin. On a terminal secrets
// are read without echo; otherwise one line is read per call.
func NewStdPrompter() Prompter {
	return NewFilePrompter(os.Stdin, os.Stderr)
}

// NewFilePrompter prompts on out and reads in.
func NewFilePrompter(in *os.File, out io.Writer) Prompter {
	return &stdPrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (p *stdPrompter) ReadSecret(prompt string) ([]byte, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return nil, fmt.Errorf("read secret: %w", err)
		}
		return secret, nil
	}

	line, err := p.readLine()
	if err != nil {
		return nil, fmt.Errorf("read secret: %w", err)
	}
	return line, nil
}

func (p *stdPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(bytes.TrimSpace(line)), nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned as is.
func (p *stdPrompter) readLine() ([]byte, error) {
	line, err := p.reader.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}

// viewerPassword returns the viewer password from the environment or the
// prompter.
func (c *CLI) viewerPassword() ([]byte, error) {
	if v, ok := os.LookupEnv(ViewerPasswordEnv); ok && v != "" {
		return []byte(v), nil
	}
	return c.prompter.ReadSecret("Viewer password: ")
}

// newSecret asks for a secret twice and fails when the answers differ.
func (c *CLI) newSecret(prompt string) ([]byte, error) {
	first, err := c.prompter.ReadSecret(prompt + ": ")
	if err != nil {
		return nil, err
	}
	second, err := c.prompter.ReadSecret("Repeat " + prompt + ": ")
	if err != nil {
		crypto.Zero(first)
		return nil, err
	}
	defer crypto.Zero(second)

	if !bytes.Equal(first, second) {
		crypto.Zero(first)
		return nil, fmt.Errorf("%s: %w", prompt, ErrSecretMismatch)
	}
	return first, nil
}

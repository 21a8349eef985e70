/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package svgpath is the interchange codec between the textual path
// description grammar and the path store. Import is best-effort: unsupported
// commands and broken numeric tokens are skipped, never fatal; only a
// description yielding zero usable anchors is reported as no path produced.
package svgpath

import (
	"errors"
	"log/slog"
	"strconv"

	"penkit/internal/geom"
	applog "penkit/internal/log"
	"penkit/internal/path"
)

// ErrNoPath is returned when a description yields no usable anchor points.
var ErrNoPath = errors.New("svgpath: no path produced")

// command is one tokenized command letter with its flat argument list.
type command struct {
	letter byte
	args   []float64
}

// anchorSpec is a parsed anchor before it is committed to the store.
type anchorSpec struct {
	pos geom.Point
	in  *geom.Point // absolute control point, if any
	out *geom.Point
}

// arity returns the argument group size per command letter. Unsupported but
// known letters still report their arity so their arguments group correctly;
// unknown letters swallow everything handed to them.
func arity(letter byte) (n int, supported bool) {
	switch letter {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2, letter != 'T' && letter != 't'
	case 'H', 'h', 'V', 'v':
		return 1, true
	case 'C', 'c':
		return 6, true
	case 'S', 's':
		return 4, true
	case 'Q', 'q':
		return 4, false
	case 'A', 'a':
		return 7, false
	case 'Z', 'z':
		return 0, true
	default:
		return -1, false
	}
}

// Import parses a path description and commits the result to the store as a
// single new path carrying the given style. On unrecoverable failure nothing
// is added to the store and ErrNoPath is returned.
func Import(st *path.Store, d string, style path.Style) (*path.VectorPath, error) {
	anchors, closed := parse(d)
	if len(anchors) == 0 {
		return nil, ErrNoPath
	}

	p := st.CreatePath(style)
	for _, spec := range anchors {
		a, _ := st.AddPoint(p.ID, spec.pos)
		// imported handles are arbitrary; no mirror relation is implied
		a.Mode = path.Independent
		if spec.in != nil {
			st.UpdateHandle(p.ID, a.ID, path.SideIn, *spec.in)
		}
		if spec.out != nil {
			st.UpdateHandle(p.ID, a.ID, path.SideOut, *spec.out)
		}
	}
	if closed {
		st.SetClosed(p.ID, true)
	}
	return p, nil
}

// parse runs the grammar over d and produces anchor specs. It never fails;
// the worst outcome is an empty result.
func parse(d string) (anchors []*anchorSpec, closed bool) {
	var (
		cur     geom.Point
		start   geom.Point
		prevCmd byte
		prevCP  geom.Point // absolute second control point of the previous cubic
	)

	appendAnchor := func(pos geom.Point) *anchorSpec {
		a := &anchorSpec{pos: pos}
		anchors = append(anchors, a)
		return a
	}
	last := func() *anchorSpec {
		if len(anchors) == 0 {
			return nil
		}
		return anchors[len(anchors)-1]
	}

	for _, cmd := range tokenize(d) {
		n, supported := arity(cmd.letter)
		if !supported {
			// tokenized but not applied: best-effort import policy
			applog.WithComponent("svgpath").Debug("skipping unsupported command",
				slog.String("cmd", string(cmd.letter)), slog.Int("args", len(cmd.args)))
			prevCmd = cmd.letter
			continue
		}
		if n == 0 {
			closed = true
			cur = start
			prevCmd = cmd.letter
			continue
		}
		// a single letter followed by repeated argument groups expands to
		// repeated implicit commands of the same type
		for i := 0; i+n <= len(cmd.args); i += n {
			g := cmd.args[i : i+n]
			rel := cmd.letter >= 'a'
			switch cmd.letter {
			case 'M', 'm':
				p := geom.Pt(g[0], g[1])
				if rel {
					p = cur.Add(p)
				}
				appendAnchor(p)
				cur, start = p, p
			case 'L', 'l':
				p := geom.Pt(g[0], g[1])
				if rel {
					p = cur.Add(p)
				}
				appendAnchor(p)
				cur = p
			case 'H', 'h':
				x := g[0]
				if rel {
					x += cur.X
				}
				p := geom.Pt(x, cur.Y)
				appendAnchor(p)
				cur = p
			case 'V', 'v':
				y := g[0]
				if rel {
					y += cur.Y
				}
				p := geom.Pt(cur.X, y)
				appendAnchor(p)
				cur = p
			case 'C', 'c':
				c1 := geom.Pt(g[0], g[1])
				c2 := geom.Pt(g[2], g[3])
				end := geom.Pt(g[4], g[5])
				if rel {
					c1, c2, end = cur.Add(c1), cur.Add(c2), cur.Add(end)
				}
				if prev := last(); prev != nil {
					cp := c1
					prev.out = &cp
				}
				a := appendAnchor(end)
				cp2 := c2
				a.in = &cp2
				cur, prevCP = end, c2
			case 'S', 's':
				c2 := geom.Pt(g[0], g[1])
				end := geom.Pt(g[2], g[3])
				if rel {
					c2, end = cur.Add(c2), cur.Add(end)
				}
				// reflect the previous curve's second control point through
				// the current anchor; without a preceding cubic the first
				// control point is the current point itself
				c1 := cur
				if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
					c1 = cur.Scale(2).Sub(prevCP)
				}
				if prev := last(); prev != nil {
					cp := c1
					prev.out = &cp
				}
				a := appendAnchor(end)
				cp2 := c2
				a.in = &cp2
				cur, prevCP = end, c2
			}
			prevCmd = cmd.letter
		}
	}
	return anchors, closed
}

// tokenize splits d into command letters with their flat numeric argument
// lists. Broken numeric tokens are dropped individually.
func tokenize(d string) []command {
	var cmds []command
	var cmd *command
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
			cmds = append(cmds, command{letter: c})
			cmd = &cmds[len(cmds)-1]
			i++
		default:
			tok, n := scanNumber(d[i:])
			if n == 0 {
				// not a number and not a command: drop the byte and move on
				i++
				continue
			}
			i += n
			if cmd == nil {
				continue // numbers before any command letter are meaningless
			}
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				applog.WithComponent("svgpath").Debug("dropping bad numeric token", slog.String("tok", tok))
				continue
			}
			cmd.args = append(cmd.args, f)
		}
	}
	return cmds
}

// scanNumber consumes one SVG-style float token: optional sign, digits,
// fractional part, optional exponent. Returns the token and bytes consumed.
func scanNumber(s string) (string, int) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return "", 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return s[:i], i
}

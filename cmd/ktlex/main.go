package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/ktlex/ktlex"
	"github.com/ktlex/ktlex/lexer"
)

var (
	version string = "dev"

	cli struct {
		Version kong.VersionFlag `help:"Show version."`
		Trace   traceCmd         `cmd:"" help:"Run a single scanner decision against a source file."`
		Semi    semiCmd          `cmd:"" help:"Report the automatic semicolon decision at every line end."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Trace the decisions of the hand-written Kotlin scanner.`),
		kong.Vars{
			"version": version,
			"kinds":   strings.Join(ktlex.KindNames(), ", "),
		},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

type traceCmd struct {
	Kinds     []string `short:"k" default:"automatic-semicolon" help:"Token kinds the grammar offers at this position (${kinds})."`
	Offset    int      `short:"o" help:"Byte offset to scan at."`
	ClassDecl bool     `help:"Assume a class header was just recognized."`
	SigEnded  bool     `help:"Assume that class header closed on its own line."`
	File      string   `arg:"" type:"existingfile" help:"Source file to scan."`
}

func (t *traceCmd) Run() error {
	source, err := os.ReadFile(t.File)
	if err != nil {
		return err
	}
	if t.Offset < 0 || t.Offset > len(source) {
		return fmt.Errorf("offset %d is outside %s (%d bytes)", t.Offset, t.File, len(source))
	}

	var valid ktlex.Valid
	for _, name := range t.Kinds {
		kind, err := ktlex.ParseKind(name)
		if err != nil {
			return err
		}
		valid[kind] = true
	}

	scanner := ktlex.New()
	scanner.Deserialize([]byte{flagByte(t.ClassDecl), flagByte(t.SigEnded)})

	cur := lexer.NewStringCursor(t.File, string(source[t.Offset:]))
	kind, ok := scanner.Scan(cur, valid)
	if !ok {
		fmt.Println("no external token: grammar alternatives apply")
		return nil
	}
	start, end := cur.TokenPos()
	if start.Offset == end.Offset {
		fmt.Printf("%s (zero width at offset %d)\n", kind, t.Offset+start.Offset)
	} else {
		fmt.Printf("%s %q (offsets %d-%d)\n", kind, cur.Token(), t.Offset+start.Offset, t.Offset+end.Offset)
	}
	fmt.Printf("state after scan: %s\n", repr.String(scanner.State()))
	return nil
}

type semiCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to scan."`
}

// Run queries the scanner once per line, positioned after the last
// non-whitespace character, the point where a grammar would offer an
// automatic semicolon.
func (a *semiCmd) Run() error {
	data, err := os.ReadFile(a.File)
	if err != nil {
		return err
	}
	source := string(data)
	valid := ktlex.ValidFor(ktlex.AutomaticSemicolon)

	line := 1
	lineStart := 0
	for i := 0; i <= len(source); i++ {
		if i < len(source) && source[i] != '\n' {
			continue
		}
		end := contentEnd(source[lineStart:i])
		if end > 0 {
			cur := lexer.NewStringCursor(a.File, source[lineStart+end:])
			_, ok := ktlex.New().Scan(cur, valid)
			verdict := "no insertion"
			if ok {
				verdict = "semicolon inserted"
			}
			fmt.Printf("%s:%d: %s\n", a.File, line, verdict)
		}
		line++
		lineStart = i + 1
	}
	return nil
}

// contentEnd returns the offset just past the last non-whitespace byte of
// the line, or 0 for a blank line.
func contentEnd(line string) int {
	return len(strings.TrimRight(line, " \t\r\v"))
}

func flagByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// genoptions is a command that generates the option descriptor table,
// gen_options.go, from an external options list. The list, options.json, is
// curated from the Vim runtime documentation: one entry per option giving its
// name, exported identifier, scope classification and value type.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/tidwall/gjson"
)

var (
	fDefs  = flag.String("defs", "internal/cmd/genoptions/options.json", "path to the options list")
	fOut   = flag.String("o", "gen_options.go", "path of the generated file")
	fWatch = flag.Bool("watch", false, "regenerate whenever the options list changes")
)

const commentWidth = 77

func main() {
	os.Exit(main1())
}

func main1() int {
	if err := mainerr(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func mainerr() error {
	flag.Parse()

	if err := gen(*fDefs, *fOut); err != nil {
		return err
	}
	if !*fWatch {
		return nil
	}
	return watch(*fDefs, *fOut)
}

func gen(defsPath, outPath string) error {
	defs, err := os.ReadFile(defsPath)
	if err != nil {
		return fmt.Errorf("failed to read options list: %v", err)
	}
	if !gjson.ValidBytes(defs) {
		return fmt.Errorf("options list %v is not valid JSON", defsPath)
	}

	var buf bytes.Buffer
	pf := func(format string, args ...interface{}) {
		fmt.Fprintf(&buf, format+"\n", args...)
	}
	pf("// Code generated by genoptions; DO NOT EDIT.")
	pf("")
	pf("package vimopt")

	seenSyms := make(map[string]bool)
	seenNames := make(map[string]bool)
	var genErr error
	gjson.ParseBytes(defs).ForEach(func(_, opt gjson.Result) bool {
		sym := opt.Get("sym").String()
		name := opt.Get("name").String()
		scope := opt.Get("scope").String()
		typ := opt.Get("type").String()
		doc := opt.Get("doc").String()

		fail := func(format string, args ...interface{}) bool {
			genErr = fmt.Errorf(format, args...)
			return false
		}
		if sym == "" || name == "" {
			return fail("entry %s is missing sym or name", opt.Raw)
		}
		if seenSyms[sym] || seenNames[name] {
			return fail("duplicate entry for %v (%v)", name, sym)
		}
		seenSyms[sym] = true
		seenNames[name] = true

		var ctor string
		switch scope {
		case "global":
			ctor = "newGlobalOption"
		case "local":
			ctor = "newLocalOption"
		case "global-local":
			ctor = "newGlobalOrLocalOption"
		default:
			return fail("option %v has unknown scope %q", name, scope)
		}
		var gotype string
		switch typ {
		case "boolean":
			gotype = "bool"
		case "number":
			gotype = "int"
		case "string":
			gotype = "string"
		default:
			return fail("option %v has unknown type %q", name, typ)
		}

		pf("")
		for _, l := range wrapComment(fmt.Sprintf("%s ('%s') %s", sym, name, doc)) {
			pf("// %s", l)
		}
		pf(`var %s = %s[%s](%q)`, sym, ctor, gotype, name)
		return true
	})
	if genErr != nil {
		return genErr
	}
	if len(seenNames) == 0 {
		return fmt.Errorf("options list %v defines no options", defsPath)
	}

	res, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format result: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(outPath, res, 0666); err != nil {
		return fmt.Errorf("failed to write %v: %v", outPath, err)
	}
	return nil
}

// wrapComment greedily wraps text into comment lines of at most commentWidth
// characters
func wrapComment(text string) []string {
	var lines []string
	var cur string
	for _, w := range strings.Split(text, " ") {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= commentWidth:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// watch blocks, regenerating outPath every time the options list is written
// to. Editors that replace the file on save produce Rename/Create rather than
// Write events, so the path is re-added after each event.
func watch(defsPath, outPath string) error {
	mw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create new watcher: %v", err)
	}
	defer mw.Close()
	if err := mw.Add(defsPath); err != nil {
		return fmt.Errorf("failed to watch %v: %v", defsPath, err)
	}
	for {
		select {
		case e, ok := <-mw.Events:
			if !ok {
				return nil
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mw.Add(defsPath)
			if err := gen(defsPath, outPath); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Fprintf(os.Stderr, "regenerated %v\n", outPath)
		case err, ok := <-mw.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

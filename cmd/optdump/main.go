// Command optdump connects a running Vim instance to the vimopt session layer
// and prints the effective value of every registered option.
//
// Start it, note the address it prints, then from Vim:
//
//	:call ch_open('localhost:<port>')
//
// optdump accepts the connection, performs the load handshake and dumps the
// option table to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/govim/vimopt"
	"gopkg.in/tomb.v2"
)

var (
	fListen = flag.String("listen", "localhost:0", "address on which to await the Vim channel connection")
	fTail   = flag.Bool("tail", false, "whether to also log session traffic to stderr")
)

func main() {
	os.Exit(main1())
}

func main1() int {
	switch err := mainerr(); err {
	case nil:
		return 0
	case flag.ErrHelp:
		return 2
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}

func mainerr() error {
	flag.Parse()

	ln, err := net.Listen("tcp", *fListen)
	if err != nil {
		return fmt.Errorf("failed to listen on %v: %v", *fListen, err)
	}
	defer ln.Close()
	fmt.Fprintf(os.Stderr, "listening on %v; connect from Vim with :call ch_open('%v')\n", ln.Addr(), ln.Addr())

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("failed to accept connection on %v: %v", ln.Addr(), err)
	}
	defer conn.Close()

	var log io.Writer = io.Discard
	if *fTail {
		log = os.Stderr
	}

	var t tomb.Tomb
	s, err := vimopt.NewSession(conn, conn, log, &t)
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}
	t.Go(s.Run)
	select {
	case <-s.Loaded():
	case <-t.Dying():
		return t.Err()
	}
	fmt.Fprintf(os.Stderr, "connected to %v %v\n", s.Flavor(), s.Version())

	if err := dump(os.Stdout, s); err != nil {
		return err
	}
	t.Kill(nil)
	// closing the connection unblocks the session's read loop
	conn.Close()
	if err := t.Wait(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func dump(w io.Writer, s vimopt.Session) error {
	for _, o := range vimopt.Registry() {
		raw, err := vimopt.Options.Get(s, o.Name)
		if err != nil {
			return fmt.Errorf("failed to get option %v: %v", o.Name, err)
		}
		fmt.Fprintf(w, "%v\t%v\t%v\t%s\n", o.Name, o.Scope, o.Kind, raw)
	}
	return nil
}

package vimopt

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kr/pretty"
	"github.com/neovim/go-client/nvim"
)

// NeoSession is a Session backed by a Neovim msgpack-rpc connection via
// github.com/neovim/go-client.
type NeoSession struct {
	nv  *nvim.Nvim
	log io.Writer

	loaded chan struct{}

	versionOnce sync.Once
	version     string

	instanceID string
}

var _ Session = (*NeoSession)(nil)

// NewNeoSession returns a Session speaking msgpack-rpc to a Neovim instance
// over the r/w pair. The returned Session's Run method must be called before
// any option access completes.
func NewNeoSession(r io.Reader, w io.Writer, c io.Closer, log io.Writer) (*NeoSession, error) {
	n := &NeoSession{
		log:        log,
		loaded:     make(chan struct{}),
		instanceID: fmt.Sprintf("#%d", atomic.AddUint64(&uniqueID, 1)),
	}
	v, err := nvim.New(r, w, c, func(format string, args ...interface{}) {
		n.Logf(format, args...)
	})
	if err != nil {
		return nil, err
	}
	n.nv = v
	return n, nil
}

func (n *NeoSession) Run() error {
	// the go-client serve loop handles responses to our own requests; there
	// is no handshake equivalent to the Vim channel load phase
	close(n.loaded)
	if bi, ok := debug.ReadBuildInfo(); ok {
		n.Logf("Build info: %v", pretty.Sprint(bi))
	} else {
		n.Logf("No build info available")
	}
	return n.nv.Serve()
}

// ChannelExpr implements Session.ChannelExpr
func (n *NeoSession) ChannelExpr(expr string) (json.RawMessage, error) {
	<-n.loaded
	var res interface{}
	if err := n.nv.Eval(expr, &res); err != nil {
		return nil, fmt.Errorf(channelExprErrMsg, expr, err)
	}
	return json.Marshal(res)
}

// ChannelCall implements Session.ChannelCall
func (n *NeoSession) ChannelCall(fn string, args ...interface{}) (json.RawMessage, error) {
	<-n.loaded
	var res interface{}
	if err := n.nv.Call(fn, &res, args...); err != nil {
		return nil, fmt.Errorf(channelCallErrMsg, fn, err)
	}
	return json.Marshal(res)
}

// ChannelEx implements Session.ChannelEx
func (n *NeoSession) ChannelEx(expr string) error {
	<-n.loaded
	return n.nv.Command(expr)
}

func (n *NeoSession) Logf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	t := time.Now().Format("2006-01-02T15:04:05.000000")
	s = strings.Replace(s, "\n", "\n"+t+"_"+n.instanceID+": ", -1)
	fmt.Fprint(n.log, t+"_"+n.instanceID+": "+s+"\n")
}

func (n *NeoSession) Flavor() Flavor {
	return FlavorNeovim
}

func (n *NeoSession) Version() string {
	n.versionOnce.Do(func() {
		var l int
		if err := n.nv.Eval(loadVersionExpr, &l); err != nil {
			n.Logf("failed to establish Neovim version: %v", err)
			return
		}
		n.version = ParseVersionLong(l)
	})
	return n.version
}

func (n *NeoSession) Loaded() chan struct{} {
	return n.loaded
}

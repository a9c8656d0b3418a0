package vimopt

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kr/pretty"
	"gopkg.in/tomb.v2"
)

// loadVersionExpr is evaluated during the load handshake to establish the
// version of the Vim instance on the other end of the channel.
const loadVersionExpr = `exists("v:versionlong")?v:versionlong:-1`

// callbackResp is the container for a response to a call made over the
// channel. Vim signals failure to evaluate an expr or call by responding with
// the literal string "ERROR".
type callbackResp struct {
	errString string
	val       json.RawMessage
}

// channelSession is a Session backed by a Vim8 channel in JSON mode. It
// speaks the channel command protocol described at
// https://vimhelp.org/channel.txt.html#channel-commands: requests carry
// negative ids chosen by us, responses echo the id back.
type channelSession struct {
	in  *json.Decoder
	out *json.Encoder
	log io.Writer

	// outLock synchronises access to out to ensure we have non-overlapping
	// sending of messages
	outLock sync.Mutex

	// callVimNextID represents the next ID to use in a call over the
	// channel. IDs are negative, per the channel protocol, so that they
	// cannot collide with Vim-initiated message sequence numbers.
	callVimNextID     int
	callbackResps     map[int]chan callbackResp
	callbackRespsLock sync.Mutex

	loaded chan struct{}

	tomb *tomb.Tomb

	version    string
	instanceID string
}

// uniqueID is an atomic counter used to assign an instance id
var uniqueID uint64

// NewSession returns a Session that speaks the Vim channel protocol over the
// in/out pair. The returned Session's Run method must be called, typically
// via t.Go, before any option access completes.
func NewSession(in io.Reader, out io.Writer, log io.Writer, t *tomb.Tomb) (Session, error) {
	g := &channelSession{
		in:  json.NewDecoder(in),
		out: json.NewEncoder(out),
		log: log,

		tomb: t,

		loaded: make(chan struct{}),

		callVimNextID: -1,
		callbackResps: make(map[int]chan callbackResp),

		instanceID: fmt.Sprintf("#%d", atomic.AddUint64(&uniqueID, 1)),
	}

	return g, nil
}

func (g *channelSession) Run() error {
	err := g.DoProto(func() error {
		return g.run()
	})
	g.tomb.Kill(err)
	return err
}

// run is the main loop that reads messages sent by Vim
func (g *channelSession) run() error {
	g.goHandleShutdown(g.load)

	for {
		id, msg := g.readJSONMsg()
		g.logVimEventf("recvJSONMsg: [%v] %s\n", id, msg)
		if id >= 0 {
			// A Vim-initiated message, e.g. via ch_sendexpr. We define no
			// handlers, so log and move on.
			g.Logf("run: dropping unsolicited message [%v] %s", id, msg)
			continue
		}
		toSend := callbackResp{val: msg}
		var errCheck string
		if json.Unmarshal(msg, &errCheck) == nil && errCheck == "ERROR" {
			// Vim's channel protocol has no structured error responses; a
			// failed expr or call evaluates to the string "ERROR"
			toSend = callbackResp{errString: "ERROR"}
		}
		g.callbackRespsLock.Lock()
		ch, ok := g.callbackResps[id]
		delete(g.callbackResps, id)
		g.callbackRespsLock.Unlock()
		if !ok {
			g.errProto("run: received response for call %v, but no response chan defined", id)
		}
		g.goHandleShutdown(func() error {
			select {
			case ch <- toSend:
			case <-g.tomb.Dying():
				return tomb.ErrDying
			}
			return nil
		})
	}
}

func (g *channelSession) goHandleShutdown(f func() error) {
	g.tomb.Go(func() error {
		defer func() {
			if r := recover(); r != nil && r != ErrShuttingDown {
				panic(r)
			}
		}()
		if err := f(); err != nil && err != ErrShuttingDown && err != tomb.ErrDying {
			g.Logf("** Tomb returned error: %v", err)
			return err
		}
		return nil
	})
}

// load performs the handshake with Vim that establishes the version of the
// instance on the other end. Option access blocks until load completes.
func (g *channelSession) load() error {
	ch := make(chan callbackResp)
	g.callVim(ch, "expr", loadVersionExpr)
	select {
	case <-g.tomb.Dying():
		return ErrShuttingDown
	case resp := <-ch:
		if resp.errString != "" {
			return fmt.Errorf("failed to establish Vim version: %v", resp.errString)
		}
		var l int
		g.decodeJSON(resp.val, &l)
		g.version = ParseVersionLong(l)
	}
	g.Logf("Loaded against %v %v", g.Flavor(), g.version)
	close(g.loaded)

	g.Logf("Go version %v", runtime.Version())
	if bi, ok := debug.ReadBuildInfo(); ok {
		g.Logf("Build info: %v", pretty.Sprint(bi))
	} else {
		g.Logf("No build info available")
	}
	return nil
}

// callVim is a low-level protocol primitive for sending a channel command to
// Vim. typ is one of the channel command names ("expr", "call", "ex"); for
// the commands that respond, ch receives the response.
func (g *channelSession) callVim(ch chan callbackResp, typ string, vs ...interface{}) error {
	args := []interface{}{typ}
	args = append(args, vs...)
	if ch != nil {
		g.callbackRespsLock.Lock()
		id := g.callVimNextID
		g.callVimNextID--
		g.callbackResps[id] = ch
		g.callbackRespsLock.Unlock()
		args = append(args, id)
	}
	g.sendJSONMsg(args)
	return nil
}

// readJSONMsg is a low-level protocol primitive for reading a JSON msg sent
// by Vim. Responses to our calls arrive as [id, value] pairs.
func (g *channelSession) readJSONMsg() (int, json.RawMessage) {
	var msg [2]json.RawMessage
	if err := g.in.Decode(&msg); err != nil {
		if err == io.EOF {
			// explicitly setting underlying here
			panic(errProto{underlying: err})
		}
		g.errProto("failed to read JSON msg: %v", err)
	}
	i := g.parseInt(msg[0])
	return i, msg[1]
}

// parseInt is a low-level protocol primtive for parsing an int from a
// raw encoded JSON value
func (g *channelSession) parseInt(m json.RawMessage) int {
	var i int
	g.decodeJSON(m, &i)
	return i
}

// sendJSONMsg is a low-level protocol primitive for sending a JSON msg that will be
// understood by Vim. See https://vimhelp.org/channel.txt.html#channel-use
func (g *channelSession) sendJSONMsg(msg []interface{}) {
	logMsg, err := json.Marshal(msg)
	if err != nil {
		g.errProto("failed to create log message: %v", err)
	}
	g.logVimEventf("sendJSONMsg: %s\n", logMsg)
	g.outLock.Lock()
	defer g.outLock.Unlock()
	if err := g.out.Encode(msg); err != nil {
		panic(ErrShuttingDown)
	}
}

// decodeJSON is a low-level protocol primitive for decoding a JSON value.
func (g *channelSession) decodeJSON(m json.RawMessage, i interface{}) {
	err := json.Unmarshal(m, i)
	if err != nil {
		g.errProto("failed to decode JSON into type %T: %v", i, err)
	}
}

func (g *channelSession) errProto(format string, args ...interface{}) {
	panic(errProto{
		underlying: fmt.Errorf(format, args...),
	})
}

func (g *channelSession) logVimEventf(format string, args ...interface{}) {
	g.Logf("vim start =======================\n"+format+"vim end =======================\n", args...)
}

func (g *channelSession) Logf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	t := time.Now().Format("2006-01-02T15:04:05.000000")
	s = strings.Replace(s, "\n", "\n"+t+"_"+g.instanceID+": ", -1)
	fmt.Fprint(g.log, t+"_"+g.instanceID+": "+s+"\n")
}

func (g *channelSession) Version() string {
	return g.version
}

func (g *channelSession) Flavor() Flavor {
	// the JSON channel protocol is Vim-only; Neovim sessions are created via
	// NewNeoSession
	return FlavorVim
}

func (g *channelSession) Loaded() chan struct{} {
	return g.loaded
}

type errProto struct {
	underlying error
}

func (e errProto) Error() string {
	return fmt.Sprintf("protocol error: %v", e.underlying)
}

func (e errProto) Unwrap() error {
	return e.underlying
}

func ParseVersionLong(l int) string {
	maj := l / 1000000
	min := (l / 10000) % 10
	pat := l % 10000
	return fmt.Sprintf("v%v.%v.%v", maj, min, pat)
}

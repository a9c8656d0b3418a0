package vimopt

import (
	"encoding/json"
	"fmt"
	"io"
)

type chanValueErrHandler func(chan callbackResp, error) (json.RawMessage, error)

func (g *channelSession) handleChannelValueAndError(format string, args ...interface{}) chanValueErrHandler {
	args = append([]interface{}{}, args...)
	return func(ch chan callbackResp, err error) (json.RawMessage, error) {
		if err != nil {
			return nil, err
		}
		select {
		case <-g.tomb.Dying():
			return nil, ErrShuttingDown
		case resp := <-ch:
			if resp.errString != "" {
				args = append(args, resp.errString)
				return nil, fmt.Errorf(format, args...)
			}
			return resp.val, nil
		}
	}
}

// ChannelExpr implements Session.ChannelExpr
func (g *channelSession) ChannelExpr(expr string) (json.RawMessage, error) {
	f := g.handleChannelValueAndError(channelExprErrMsg, expr)
	return g.channelExprImpl(f, expr)
}

const channelExprErrMsg = "failed to expr(%v) in Vim: %v"

func (g *channelSession) channelExprImpl(f chanValueErrHandler, expr string) (json.RawMessage, error) {
	<-g.loaded
	var err error
	ch := make(chan callbackResp)
	err = g.DoProto(func() error {
		return g.callVim(ch, "expr", expr)
	})
	return f(ch, err)
}

// ChannelCall implements Session.ChannelCall
func (g *channelSession) ChannelCall(fn string, args ...interface{}) (json.RawMessage, error) {
	f := g.handleChannelValueAndError(channelCallErrMsg, fn)
	return g.channelCallImpl(f, fn, args...)
}

const channelCallErrMsg = "failed to call(%v) in Vim: %v"

func (g *channelSession) channelCallImpl(f chanValueErrHandler, fn string, args ...interface{}) (json.RawMessage, error) {
	<-g.loaded
	if args == nil {
		// the channel protocol requires the arg list to be present
		args = []interface{}{}
	}
	var err error
	ch := make(chan callbackResp)
	err = g.DoProto(func() error {
		return g.callVim(ch, "call", fn, args)
	})
	return f(ch, err)
}

// ChannelEx implements Session.ChannelEx. The channel protocol defines no
// response for ex commands; an error is only returned if the send fails.
func (g *channelSession) ChannelEx(expr string) error {
	<-g.loaded
	return g.DoProto(func() error {
		return g.callVim(nil, "ex", expr)
	})
}

func (g *channelSession) DoProto(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case errProto:
				if r.underlying == io.EOF {
					g.logVimEventf("closing connection\n")
					return
				}
				err = r
			case error:
				err = r
			default:
				panic(r)
			}
		}
	}()
	err = f()
	return
}

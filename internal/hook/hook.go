// Package hook implements the PreToolUse stdio protocol: one JSON request
// on stdin describing a pending tool call, at most one JSON response on
// stdout. Emitting nothing means "run the command as-is"; emitting an
// updatedInput substitutes the rewritten command before execution.
//
// A hook must never break the host, so every failure here — undecodable
// input, unknown tools, a full disk under the tally file — degrades to
// pass-through.
package hook

import (
	"encoding/json"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/hpkotak/rtkwrap/internal/engine"
	"github.com/hpkotak/rtkwrap/internal/stats"
)

// bashTool is the only tool whose input carries a shell command we know
// how to rewrite.
const bashTool = "Bash"

// Input is the hook request sent by the host.
type Input struct {
	SessionID     string    `json:"session_id"`
	HookEventName string    `json:"hook_event_name"`
	ToolName      string    `json:"tool_name"`
	ToolInput     ToolInput `json:"tool_input"`
}

// ToolInput holds the command details nested within Input.
type ToolInput struct {
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
}

// Output is the hook response. It is only written when the command is
// being rewritten.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

type SpecificOutput struct {
	HookEventName string       `json:"hookEventName"`
	UpdatedInput  UpdatedInput `json:"updatedInput"`
}

type UpdatedInput struct {
	Command string `json:"command"`
}

// Handler processes hook invocations against one config snapshot.
type Handler struct {
	Config   engine.Config
	Recorder stats.Recorder
	Logger   *zap.Logger
}

// Run handles a single invocation: decode, decide, respond. The returned
// error is only ever an encoding/write failure on the response path.
func (h *Handler) Run(in io.Reader, out io.Writer) error {
	log := h.logger()

	var input Input
	if err := json.NewDecoder(in).Decode(&input); err != nil {
		log.Debug("undecodable hook input", zap.Error(err))
		return nil
	}

	if input.ToolName != bashTool {
		log.Debug("ignoring tool", zap.String("tool", input.ToolName))
		return nil
	}

	d := engine.Decide(input.ToolInput.Command, h.Config)

	if !d.Rewritten {
		log.Debug("pass through",
			zap.String("command", input.ToolInput.Command),
			zap.Stringer("reason", d.Reason))
		return nil
	}

	log.Info("rewriting command",
		zap.String("from", input.ToolInput.Command),
		zap.String("to", d.Command))

	if h.Recorder != nil {
		// Tally by the original head so the counts say which commands get
		// rewritten, not what they became.
		head := engine.Head(strings.TrimSpace(input.ToolInput.Command))
		if err := h.Recorder.Record(head); err != nil {
			// A tally failure is not worth blocking the rewrite.
			log.Warn("recording rewrite tally", zap.Error(err))
		}
	}

	return json.NewEncoder(out).Encode(Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName: "PreToolUse",
			UpdatedInput:  UpdatedInput{Command: d.Command},
		},
	})
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

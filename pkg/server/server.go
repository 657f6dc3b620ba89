package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word completions
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server on the given streams
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    writer,
		encoder:   msgpack.NewEncoder(writer),
		logger:    logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input stream ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	s.sendResponse(s.dictionaryStatus("", "ready"))

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("reading request: %w", err)
		}
		s.requestCount++

		var req request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Warnf("Decoding request: %v", err)
			s.sendError(requestID(raw), "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

// requestID recovers the id of a message that did not fit the request shape.
func requestID(raw msgpack.RawMessage) string {
	var partial struct {
		ID string `msgpack:"id"`
	}
	if err := msgpack.Unmarshal(raw, &partial); err != nil {
		return ""
	}
	return partial.ID
}

// handleRequest dispatches on the action field; no action means completion.
func (s *Server) handleRequest(req request) {
	switch req.Action {
	case "", ActionComplete:
		s.handleComplete(req)
	case ActionAdd:
		if req.Word == "" {
			s.sendError(req.ID, "Missing 'w' parameter", 400)
			return
		}
		s.completer.AddWord(req.Word)
		s.sendResponse(s.dictionaryStatus(req.ID, "ok"))
	case ActionReload:
		if err := s.completer.Reload(); err != nil {
			s.logger.Warnf("Reload failed: %v", err)
			resp := s.dictionaryStatus(req.ID, "error")
			resp.Error = err.Error()
			s.sendResponse(resp)
			return
		}
		s.sendResponse(s.dictionaryStatus(req.ID, "ok"))
	case ActionStats:
		s.sendResponse(s.dictionaryStatus(req.ID, "ok"))
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

// handleComplete validates the prefix and limit, then asks the completer.
func (s *Server) handleComplete(req request) {
	prefix := req.Prefix
	maxPrefix := s.config.Server.MaxPrefix

	if len(prefix) > maxPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", maxPrefix), 400)
		s.logger.Debug("Prefix is too long in request", "id", req.ID)
		return
	}

	limit := req.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	words := []string{}
	if len(prefix) >= s.config.Server.MinPrefix {
		words = s.completer.Complete(prefix, limit)
	}
	elapsed := time.Since(start)

	suggestions := make([]CompletionSuggestion, len(words))
	for i, w := range words {
		suggestions[i] = CompletionSuggestion{Word: w, Rank: uint16(i + 1)}
	}

	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) dictionaryStatus(id, status string) DictionaryResponse {
	stats := s.completer.Stats()
	return DictionaryResponse{
		ID:     id,
		Status: status,
		Words:  stats["totalWords"],
		Nodes:  stats["nodes"],
	}
}

// sendResponse encodes one message and flushes it to the client.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

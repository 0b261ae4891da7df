package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/edi-cli/internal/envelope"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService runs inputs through decoding, classification, header
// extraction, capability lookup and invocation. Each call runs to a terminal
// state; the first failing stage ends it and nothing is emitted.
type ConversionService struct {
	decoder  driven.TextDecoder
	registry *CapabilityRegistry
	history  driven.HistoryStore
	metrics  driven.ConversionMetrics
	output   domain.OutputSettings
	now      func() time.Time
}

// NewConversionService creates a new conversion service.
func NewConversionService(decoder driven.TextDecoder, registry *CapabilityRegistry) *ConversionService {
	return &ConversionService{
		decoder:  decoder,
		registry: registry,
		output:   domain.DefaultAppSettings().Output,
		now:      time.Now,
	}
}

// SetHistoryStore enables recording of terminal states. A nil store disables it.
func (s *ConversionService) SetHistoryStore(store driven.HistoryStore) {
	s.history = store
}

// SetMetrics sets the metrics sink for terminal states.
func (s *ConversionService) SetMetrics(metrics driven.ConversionMetrics) {
	s.metrics = metrics
}

// SetOutputSettings sets how structured values are emitted.
func (s *ConversionService) SetOutputSettings(output domain.OutputSettings) {
	s.output = output
}

// invocation tracks one pass through the pipeline.
type invocation struct {
	record  domain.ConversionRecord
	started time.Time
}

func (inv *invocation) enter(stage domain.Stage) {
	inv.record.Stage = stage
	logger.Debug("stage: %s", stage)
}

func (inv *invocation) setKey(key domain.RoutingKey) {
	inv.record.Dialect = key.Dialect
	inv.record.Version = key.Version
	inv.record.MessageType = key.MessageType
}

// Encoding classifies the input dialect. It never fails.
func (s *ConversionService) Encoding(ctx context.Context, in domain.Input) domain.Dialect {
	inv := s.begin(domain.CommandEncoding, in)

	decoded := s.decode(inv, in)
	dialect := s.classify(inv, decoded.Text)

	s.finish(ctx, inv, nil)
	return dialect
}

// Type extracts the routing key of an EDI document.
func (s *ConversionService) Type(ctx context.Context, in domain.Input) (domain.RoutingKey, error) {
	inv := s.begin(domain.CommandType, in)

	_, key, err := s.resolve(inv, in)

	s.finish(ctx, inv, err)
	return key, err
}

// ToStructured converts an EDI document into a structured value.
func (s *ConversionService) ToStructured(ctx context.Context, in domain.Input) (*domain.Conversion, error) {
	inv := s.begin(domain.CommandToStructured, in)

	conv, err := s.toStructured(inv, in)

	s.finish(ctx, inv, err)
	return conv, err
}

func (s *ConversionService) toStructured(inv *invocation, in domain.Input) (*domain.Conversion, error) {
	decoded, key, err := s.resolve(inv, in)
	if err != nil {
		return nil, err
	}

	codec, err := s.lookup(inv, key)
	if err != nil {
		return nil, err
	}

	inv.enter(domain.StageInvoking)
	value, err := codec.Parse(decoded.Text)
	if err != nil {
		return nil, &domain.CodecError{Op: "parse", Key: key, Err: err}
	}

	output := value.String()
	if s.output.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, value, "", "  "); err == nil {
			output = buf.String()
		}
	}

	return &domain.Conversion{Key: key, Charset: decoded.Charset, Output: output}, nil
}

// ToDocument converts a structured value back into an EDI document.
// The routing key is recovered from the structured value itself rather
// than through header extraction.
func (s *ConversionService) ToDocument(ctx context.Context, in domain.Input) (*domain.Conversion, error) {
	inv := s.begin(domain.CommandToDocument, in)

	conv, err := s.toDocument(inv, in)

	s.finish(ctx, inv, err)
	return conv, err
}

func (s *ConversionService) toDocument(inv *invocation, in domain.Input) (*domain.Conversion, error) {
	decoded := s.decode(inv, in)
	value := domain.StructuredValue(decoded.Text)

	inv.enter(domain.StageExtractingKey)
	key, err := probeRoutingKey(value)
	if err != nil {
		var notSupported *domain.NotSupportedError
		if errors.As(err, &notSupported) {
			inv.record.Dialect = notSupported.Dialect
		}
		return nil, err
	}
	inv.setKey(key)
	logger.Info("routing key: %s", key.Qualified())

	codec, err := s.lookup(inv, key)
	if err != nil {
		return nil, err
	}

	inv.enter(domain.StageInvoking)
	text, err := codec.Serialize(value)
	if err != nil {
		return nil, &domain.CodecError{Op: "serialize", Key: key, Err: err}
	}

	return &domain.Conversion{Key: key, Charset: decoded.Charset, Output: text}, nil
}

// resolve decodes, classifies and extracts the routing key of an EDI document.
func (s *ConversionService) resolve(inv *invocation, in domain.Input) (domain.DecodedText, domain.RoutingKey, error) {
	decoded := s.decode(inv, in)

	dialect := s.classify(inv, decoded.Text)
	if dialect == domain.DialectUnknown {
		return decoded, domain.RoutingKey{}, domain.ErrDialectUnknown
	}

	inv.enter(domain.StageExtractingKey)
	key, err := envelope.Extract(dialect, decoded.Text)
	if err != nil {
		return decoded, domain.RoutingKey{}, err
	}
	inv.setKey(key)
	logger.Info("routing key: %s", key.Qualified())

	return decoded, key, nil
}

func (s *ConversionService) decode(inv *invocation, in domain.Input) domain.DecodedText {
	inv.enter(domain.StageDecoding)

	decoded := s.decoder.Decode(in.Content)
	inv.record.Charset = decoded.Charset
	logger.Debug("decoded %d bytes as %s", len(in.Content), decoded.Charset)

	if decoded.Lossy() {
		logger.Notice("warning: %s", domain.DecodeAdvisory)
	}
	return decoded
}

func (s *ConversionService) classify(inv *invocation, text string) domain.Dialect {
	inv.enter(domain.StageClassifying)

	dialect := envelope.Detect(text)
	inv.record.Dialect = dialect
	logger.Debug("dialect: %s", dialect)
	return dialect
}

func (s *ConversionService) lookup(inv *invocation, key domain.RoutingKey) (driven.Codec, error) {
	inv.enter(domain.StageLookingUp)
	return s.registry.Lookup(key)
}

func (s *ConversionService) begin(cmd domain.Command, in domain.Input) *invocation {
	logger.Section(string(cmd))
	logger.Debug("input: %s", in.Name)

	return &invocation{
		record: domain.ConversionRecord{
			Command: cmd,
			Input:   in.Name,
		},
		started: s.now(),
	}
}

// finish moves the invocation to its terminal state and reports it.
// Recording failures are logged and never change the outcome.
func (s *ConversionService) finish(ctx context.Context, inv *invocation, err error) {
	finished := s.now()
	rec := inv.record
	rec.CreatedAt = finished

	if err != nil {
		rec.Error = err.Error()
		logger.Warn("%s failed while %s: %v", rec.Command, rec.Stage, err)
	} else {
		rec.Stage = domain.StageDone
		rec.Success = true
		logger.Debug("stage: %s", domain.StageDone)
	}

	if s.metrics != nil {
		s.metrics.ObserveConversion(rec.Command, rec.Dialect, rec.Success, finished.Sub(inv.started))
	}

	if s.history != nil {
		if herr := s.history.Save(ctx, rec); herr != nil {
			logger.Warn("recording history: %v", herr)
		}
	}
}

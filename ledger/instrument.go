package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/midgardlabs/coffer/log"
)

// tracerName identifies this instrumentation scope.
const tracerName = "github.com/midgardlabs/coffer/ledger"

// Instrumented decorates a Ledger with structured logs and OpenTelemetry
// spans per operation. PINs are accepted as arguments but never forwarded to
// the logger or recorded as span attributes.
type Instrumented struct {
	base   *Ledger
	logger log.Logger
	tracer trace.Tracer
}

// NewInstrumented wraps base. A nil logger disables logging; spans use the
// globally registered tracer provider.
func NewInstrumented(base *Ledger, logger log.Logger) *Instrumented {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Instrumented{
		base:   base,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Authenticate delegates to the ledger and logs only the boolean outcome.
func (i *Instrumented) Authenticate(ctx context.Context, number, pin string) bool {
	ctx, span := i.tracer.Start(ctx, "ledger.Authenticate",
		trace.WithAttributes(attribute.String("account.number", number)))
	defer span.End()

	ok := i.base.Authenticate(number, pin)
	span.SetAttributes(attribute.Bool("auth.ok", ok))

	level := log.LevelInfo
	if !ok {
		level = log.LevelWarn
	}

	i.logger.Log(ctx, level, "authenticate",
		log.String("account", number), log.Bool("ok", ok))

	return ok
}

// Deposit delegates to the ledger's Deposit.
func (i *Instrumented) Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	ctx, span := i.tracer.Start(ctx, "ledger.Deposit", trace.WithAttributes(
		attribute.String("account.number", number),
		attribute.String("amount", amount.String()),
	))
	defer span.End()

	balance, err := i.base.Deposit(ctx, number, amount)
	i.finish(ctx, span, "deposit", err, log.String("account", number))

	return balance, err
}

// Withdraw delegates to the ledger's Withdraw.
func (i *Instrumented) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	ctx, span := i.tracer.Start(ctx, "ledger.Withdraw", trace.WithAttributes(
		attribute.String("account.number", number),
		attribute.String("amount", amount.String()),
	))
	defer span.End()

	balance, err := i.base.Withdraw(ctx, number, amount)
	i.finish(ctx, span, "withdraw", err, log.String("account", number))

	return balance, err
}

// Transfer delegates to the ledger's Transfer.
func (i *Instrumented) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (TransferResult, error) {
	ctx, span := i.tracer.Start(ctx, "ledger.Transfer", trace.WithAttributes(
		attribute.String("account.from", from),
		attribute.String("account.to", to),
		attribute.String("amount", amount.String()),
	))
	defer span.End()

	result, err := i.base.Transfer(ctx, from, to, amount)
	i.finish(ctx, span, "transfer", err,
		log.String("from", from), log.String("to", to))

	return result, err
}

// ChangePIN delegates to the ledger's ChangePIN. The PIN arguments are not
// logged or traced.
func (i *Instrumented) ChangePIN(ctx context.Context, number, currentPIN, newPIN string) error {
	ctx, span := i.tracer.Start(ctx, "ledger.ChangePIN",
		trace.WithAttributes(attribute.String("account.number", number)))
	defer span.End()

	err := i.base.ChangePIN(ctx, number, currentPIN, newPIN)
	i.finish(ctx, span, "change pin", err, log.String("account", number))

	return err
}

// RecordInquiry delegates to the ledger's RecordInquiry.
func (i *Instrumented) RecordInquiry(ctx context.Context, number string) (decimal.Decimal, error) {
	ctx, span := i.tracer.Start(ctx, "ledger.RecordInquiry",
		trace.WithAttributes(attribute.String("account.number", number)))
	defer span.End()

	balance, err := i.base.RecordInquiry(ctx, number)
	i.finish(ctx, span, "balance inquiry", err, log.String("account", number))

	return balance, err
}

// History delegates to the ledger's History.
func (i *Instrumented) History(ctx context.Context, number string, limit int) ([]Entry, error) {
	ctx, span := i.tracer.Start(ctx, "ledger.History", trace.WithAttributes(
		attribute.String("account.number", number),
		attribute.Int("limit", limit),
	))
	defer span.End()

	entries, err := i.base.History(ctx, number, limit)
	i.finish(ctx, span, "history", err,
		log.String("account", number), log.Int("returned", len(entries)))

	return entries, err
}

// Summary delegates to the ledger's Summary.
func (i *Instrumented) Summary(ctx context.Context, number string) (Summary, error) {
	ctx, span := i.tracer.Start(ctx, "ledger.Summary",
		trace.WithAttributes(attribute.String("account.number", number)))
	defer span.End()

	summary, err := i.base.Summary(ctx, number)
	i.finish(ctx, span, "summary", err, log.String("account", number))

	return summary, err
}

// finish records the operation outcome on the span and emits one log line:
// Info on success, Warn on domain rejection, Error when the operation was
// aborted waiting for a lock.
func (i *Instrumented) finish(ctx context.Context, span trace.Span, op string, err error, fields ...log.Field) {
	if err == nil {
		i.logger.Log(ctx, log.LevelInfo, op, fields...)
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	level := log.LevelWarn

	code, ok := CodeOf(err)
	if ok {
		span.SetAttributes(attribute.String("error.code", string(code)))

		if code == ErrorOperationAborted {
			level = log.LevelError
		}
	}

	i.logger.Log(ctx, level, op+" rejected", append(fields, log.Err(err))...)
}

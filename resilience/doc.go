// Package resilience bounds the work a renderer accepts at once.
//
// Bulkhead admits at most MaxConcurrent operations. Callers beyond that
// either wait up to MaxWait for a slot or fail fast with ErrBulkheadFull, so
// an overloaded renderer sheds requests instead of queueing them without
// limit.
//
//	b := resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: 64})
//	err := b.Execute(ctx, func(ctx context.Context) error {
//	    return render(ctx)
//	})
package resilience

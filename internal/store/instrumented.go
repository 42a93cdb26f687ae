package store

import "context"

type writeObserver interface {
	ObserveSnapshotWrite(slot string)
}

// InstrumentSnapshots wraps a snapshot repository so every successful slot
// write is counted by the observer.
func InstrumentSnapshots(next *SnapshotRepository, obs writeObserver) *ObservedSnapshots {
	return &ObservedSnapshots{next: next, obs: obs}
}

// ObservedSnapshots decorates SnapshotRepository with write metrics.
type ObservedSnapshots struct {
	next *SnapshotRepository
	obs  writeObserver
}

func (o *ObservedSnapshots) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	return o.next.Load(ctx, slot)
}

func (o *ObservedSnapshots) Save(ctx context.Context, slot string, payload []byte) error {
	if err := o.next.Save(ctx, slot, payload); err != nil {
		return err
	}
	if o.obs != nil {
		o.obs.ObserveSnapshotWrite(slot)
	}
	return nil
}

func (o *ObservedSnapshots) Delete(ctx context.Context, slot string) error {
	return o.next.Delete(ctx, slot)
}

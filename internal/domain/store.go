package domain

// CollectionQueries: synchronous reads of in-memory state.
// Safe to call from View().
type CollectionQueries interface {
	Entries(kind Kind) []Entry
	Entry(kind Kind, index int) (Entry, bool)
	Len(kind Kind) int
	Snapshot() Collection
}

// CollectionCommands: mutations. Each successful one persists the full collection.
type CollectionCommands interface {
	Add(kind Kind, entry Entry) error
	Update(kind Kind, index int, entry Entry) error
	Remove(kind Kind, index int) error
	Persist() error
}

// ChangeObserver receives the new list for a kind after every successful mutation.
type ChangeObserver interface {
	OnCollectionChange(kind Kind, entries []Entry)
}

// ChangeObserverFunc adapts a function to ChangeObserver.
type ChangeObserverFunc func(kind Kind, entries []Entry)

func (f ChangeObserverFunc) OnCollectionChange(kind Kind, entries []Entry) { f(kind, entries) }

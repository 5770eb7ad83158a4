package model

// All lists every model migrated at startup, parents first.
func All() []any {
	return []any{&AccountModel{}, &ListModel{}, &TaskModel{}}
}

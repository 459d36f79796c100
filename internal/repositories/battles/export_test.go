package battles

// MemoryLen reports how many records an in-memory repository holds
func MemoryLen(r Repository) int {
	return r.(*memoryRepository).size()
}

package storage

// Memory — хранилище в памяти процесса. Используется в тестах и в
// режиме FLEET_STORAGE=memory, когда состояние между запусками не нужно.
type Memory struct {
	m map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{m: map[string][]byte{}}
}

// Read возвращает копию значения, чтобы вызывающий не мог изменить
// содержимое хранилища в обход Write.
func (s *Memory) Read(key string) ([]byte, bool, error) {
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *Memory) Write(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.m[key] = cp
	return nil
}

func (s *Memory) Delete(key string) error {
	delete(s.m, key)
	return nil
}

func (s *Memory) Close() error { return nil }

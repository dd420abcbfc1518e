package testutil

import "sync"

// MockEnforcer is an in-memory permission.PermissionEnforcer.
type MockEnforcer struct {
	mu    sync.RWMutex
	roles map[string][]string

	AddRoleError error
}

func NewMockEnforcer() *MockEnforcer {
	return &MockEnforcer{roles: make(map[string][]string)}
}

func (m *MockEnforcer) Enforce(userID, resource, action string) (bool, error) {
	return true, nil
}

func (m *MockEnforcer) AddRoleForUser(userID, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddRoleError != nil {
		return m.AddRoleError
	}
	m.roles[userID] = append(m.roles[userID], role)
	return nil
}

func (m *MockEnforcer) DeleteRoleForUser(userID, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.roles[userID][:0]
	for _, r := range m.roles[userID] {
		if r != role {
			kept = append(kept, r)
		}
	}
	m.roles[userID] = kept
	return nil
}

func (m *MockEnforcer) GetRolesForUser(userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.roles[userID]...), nil
}

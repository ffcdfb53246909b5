// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/callward/callward/models"
)

// ─────────────────────────────────────────────
// Mock: store.CallRepository
// ─────────────────────────────────────────────

type mockCallRepository struct {
	listFn       func(ctx context.Context, filter models.CallFilter) ([]models.Call, error)
	listActiveFn func(ctx context.Context) ([]models.Call, error)
	statsTodayFn func(ctx context.Context) (models.TodayStats, error)

	calls int
}

func (m *mockCallRepository) List(ctx context.Context, filter models.CallFilter) ([]models.Call, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockCallRepository) ListActive(ctx context.Context) ([]models.Call, error) {
	m.calls++
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockCallRepository) StatsToday(ctx context.Context) (models.TodayStats, error) {
	m.calls++
	if m.statsTodayFn != nil {
		return m.statsTodayFn(ctx)
	}
	return models.TodayStats{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.DemoCallRepository
// ─────────────────────────────────────────────

type mockDemoCallRepository struct {
	listFn func(ctx context.Context, filter models.DemoCallFilter) ([]models.DemoCall, error)

	calls int
}

func (m *mockDemoCallRepository) List(ctx context.Context, filter models.DemoCallFilter) ([]models.DemoCall, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.TaskRepository
// ─────────────────────────────────────────────

type mockTaskRepository struct {
	listFn func(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	calls int
}

func (m *mockTaskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.DirectoryRepository
// ─────────────────────────────────────────────

type mockDirectoryRepository struct {
	leadNamesFn  func(ctx context.Context, ids []string) (map[string]string, error)
	agentNamesFn func(ctx context.Context, ids []string) (map[string]string, error)
}

func (m *mockDirectoryRepository) LeadNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if m.leadNamesFn != nil {
		return m.leadNamesFn(ctx, ids)
	}
	return map[string]string{}, nil
}

func (m *mockDirectoryRepository) AgentNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if m.agentNamesFn != nil {
		return m.agentNamesFn(ctx, ids)
	}
	return map[string]string{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.RoleRepository
// ─────────────────────────────────────────────

type mockRoleRepository struct {
	roleByUserIDFn func(ctx context.Context, userID string) (models.Role, error)
}

func (m *mockRoleRepository) RoleByUserID(ctx context.Context, userID string) (models.Role, error) {
	if m.roleByUserIDFn != nil {
		return m.roleByUserIDFn(ctx, userID)
	}
	return models.RoleNone, nil
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/callward/callward/internal/crypto"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/mask"
	"github.com/callward/callward/internal/sanitize"
	"github.com/callward/callward/internal/store"
	"github.com/callward/callward/models"
)

// startDateLayout is the wire format of the start_date query parameter.
const startDateLayout = "2006-01-02"

type proxyService struct {
	callRepository      store.CallRepository
	demoCallRepository  store.DemoCallRepository
	taskRepository      store.TaskRepository
	directoryRepository store.DirectoryRepository

	cipher    crypto.FieldCipher
	sanitizer *sanitize.Sanitizer

	logger *logger.Logger
}

func NewProxyService(storages *store.Storages, cipher crypto.FieldCipher, sanitizer *sanitize.Sanitizer, logger *logger.Logger) ProxyService {
	return &proxyService{
		callRepository:      storages.Calls,
		demoCallRepository:  storages.DemoCalls,
		taskRepository:      storages.Tasks,
		directoryRepository: storages.Directory,
		cipher:              cipher,
		sanitizer:           sanitizer,
		logger:              logger,
	}
}

// Handle implements [ProxyService]. Dispatch is a closed table: an action
// outside the known set is a validation error, never a fallthrough.
func (p *proxyService) Handle(ctx context.Context, access models.AccessContext, action models.Action, params models.QueryParams) (any, error) {
	switch action {
	case models.ActionCalls:
		return p.listCalls(ctx, params)
	case models.ActionDemoCalls:
		return p.listDemoCalls(ctx, access, params)
	case models.ActionAdminDemoCalls:
		return p.listDemoCalls(ctx, models.AccessContext{}, params)
	case models.ActionActiveCalls:
		return p.listActiveCalls(ctx)
	case models.ActionStatsToday:
		return p.statsToday(ctx)
	case models.ActionTasks:
		return p.listTasks(ctx, params)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

func (p *proxyService) listCalls(ctx context.Context, params models.QueryParams) ([]models.CallView, error) {
	filter := models.CallFilter{
		ClientID: params.ClientID,
		Status:   params.Status,
	}

	if params.StartDate != "" {
		startDate, err := time.Parse(startDateLayout, params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date %q is not a valid date", ErrInvalidParams, params.StartDate)
		}
		filter.StartDate = startDate
	}

	calls, err := p.callRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing calls: %w", err)
	}

	return p.shapeCalls(ctx, calls)
}

func (p *proxyService) listActiveCalls(ctx context.Context) ([]models.CallView, error) {
	calls, err := p.callRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active calls: %w", err)
	}

	return p.shapeCalls(ctx, calls)
}

// listDemoCalls serves both the self-scoped and the admin-wide listing.
// The gate decides the scope: a non-empty EngineerScope overrides any
// caller-supplied engineer filter.
func (p *proxyService) listDemoCalls(ctx context.Context, access models.AccessContext, params models.QueryParams) ([]models.DemoCallView, error) {
	filter := models.DemoCallFilter{
		EngineerID: params.EngineerID,
		Status:     params.Status,
	}
	if access.EngineerScope != "" {
		filter.EngineerID = access.EngineerScope
	}

	demoCalls, err := p.demoCallRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing demo calls: %w", err)
	}

	return p.shapeDemoCalls(ctx, demoCalls)
}

func (p *proxyService) statsToday(ctx context.Context) (models.TodayStats, error) {
	stats, err := p.callRepository.StatsToday(ctx)
	if err != nil {
		return models.TodayStats{}, fmt.Errorf("aggregating today's stats: %w", err)
	}

	return stats, nil
}

func (p *proxyService) listTasks(ctx context.Context, params models.QueryParams) ([]models.TaskView, error) {
	filter := models.TaskFilter{
		AssignedTo: params.AssignedTo,
		Status:     params.Status,
	}

	tasks, err := p.taskRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	return p.shapeTasks(ctx, tasks)
}

// shapeCalls runs every row through the fixed pipeline: identifier
// masking, phone masking, transcript/summary encryption, metadata
// sanitization, media URL proxying, then joined display fields. Auxiliary
// names come from one bulk fetch per table, keyed by the distinct foreign
// ids of the primary rows.
func (p *proxyService) shapeCalls(ctx context.Context, calls []models.Call) ([]models.CallView, error) {
	leadIDs := make([]string, 0, len(calls))
	agentIDs := make([]string, 0, len(calls))
	for _, call := range calls {
		if call.LeadID != "" {
			leadIDs = append(leadIDs, call.LeadID)
		}
		if call.AgentID != "" {
			agentIDs = append(agentIDs, call.AgentID)
		}
	}

	leadNames, err := p.directoryRepository.LeadNamesByIDs(ctx, distinct(leadIDs))
	if err != nil {
		return nil, fmt.Errorf("resolving lead names: %w", err)
	}
	agentNames, err := p.directoryRepository.AgentNamesByIDs(ctx, distinct(agentIDs))
	if err != nil {
		return nil, fmt.Errorf("resolving agent names: %w", err)
	}

	views := make([]models.CallView, 0, len(calls))
	for _, call := range calls {
		view, shapeErr := p.shapeCall(call)
		if shapeErr != nil {
			return nil, shapeErr
		}

		view.LeadName = leadNames[call.LeadID]
		view.AgentName = agentNames[call.AgentID]

		views = append(views, view)
	}

	return views, nil
}

func (p *proxyService) shapeCall(call models.Call) (models.CallView, error) {
	transcript, err := p.cipher.Encrypt(call.Transcript)
	if err != nil {
		return models.CallView{}, fmt.Errorf("encrypting transcript: %w", err)
	}
	summary, err := p.cipher.Encrypt(call.Summary)
	if err != nil {
		return models.CallView{}, fmt.Errorf("encrypting summary: %w", err)
	}

	return models.CallView{
		ID:             call.ID,
		ExternalCallID: mask.Identifier(call.ExternalCallID),
		LeadID:         mask.Identifier(call.LeadID),
		AgentID:        mask.Identifier(call.AgentID),
		ClientID:       call.ClientID,
		PhoneNumber:    mask.Phone(call.PhoneNumber),
		Status:         call.Status,
		Transcript:     transcript,
		Summary:        summary,
		RecordingURL:   mask.MediaURL(call.RecordingURL, call.ID),
		Metadata:       p.sanitizer.Sanitize(call.Metadata),
		Sentiment:      call.Sentiment,
		DurationSec:    call.DurationSec,
		StartedAt:      call.StartedAt,
	}, nil
}

func (p *proxyService) shapeDemoCalls(ctx context.Context, demoCalls []models.DemoCall) ([]models.DemoCallView, error) {
	views := make([]models.DemoCallView, 0, len(demoCalls))
	for _, demoCall := range demoCalls {
		transcript, err := p.cipher.Encrypt(demoCall.Transcript)
		if err != nil {
			return nil, fmt.Errorf("encrypting demo transcript: %w", err)
		}

		views = append(views, models.DemoCallView{
			ID:           demoCall.ID,
			EngineerID:   demoCall.EngineerID,
			LeadID:       mask.Identifier(demoCall.LeadID),
			LeadName:     demoCall.LeadName,
			PhoneNumber:  mask.Phone(demoCall.PhoneNumber),
			Status:       demoCall.Status,
			Transcript:   transcript,
			AgentPrompt:  mask.Prompt(demoCall.AgentPrompt),
			RecordingURL: mask.MediaURL(demoCall.RecordingURL, demoCall.ID),
			Metadata:     p.sanitizer.Sanitize(demoCall.Metadata),
			ScheduledAt:  demoCall.ScheduledAt,
		})
	}

	return views, nil
}

func (p *proxyService) shapeTasks(ctx context.Context, tasks []models.Task) ([]models.TaskView, error) {
	leadIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if task.LeadID != "" {
			leadIDs = append(leadIDs, task.LeadID)
		}
	}

	leadNames, err := p.directoryRepository.LeadNamesByIDs(ctx, distinct(leadIDs))
	if err != nil {
		return nil, fmt.Errorf("resolving lead names: %w", err)
	}

	views := make([]models.TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, models.TaskView{
			ID:         task.ID,
			Title:      task.Title,
			Status:     task.Status,
			AssignedTo: task.AssignedTo,
			LeadID:     mask.Identifier(task.LeadID),
			CallID:     task.CallID,
			DueAt:      task.DueAt,
			CreatedAt:  task.CreatedAt,
			LeadName:   leadNames[task.LeadID],
		})
	}

	return views, nil
}

// distinct deduplicates ids while preserving first-seen order.
func distinct(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

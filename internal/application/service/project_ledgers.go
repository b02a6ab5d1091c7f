package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
)

// ledgerLoader derives project totals from raw bills and payments. Every
// project total goes through ledger.Aggregate and every vendor total through
// ledger.AggregateProjects; nothing is cached between calls.
type ledgerLoader struct {
	billRepo    repository.BillRepository
	paymentRepo repository.PaymentRepository
}

// projectLedgers loads bills and payments for all projects in two queries
// and aggregates each project. Output order follows projects.
func (l ledgerLoader) projectLedgers(ctx context.Context, projects []entity.Project) ([]entity.ProjectLedger, ledger.Totals, error) {
	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}

	bills, err := l.billRepo.ListByProjects(ctx, ids)
	if err != nil {
		return nil, ledger.Totals{}, err
	}
	payments, err := l.paymentRepo.ListByProjects(ctx, ids)
	if err != nil {
		return nil, ledger.Totals{}, err
	}

	billsBy := make(map[uuid.UUID][]entity.Bill, len(projects))
	for _, b := range bills {
		billsBy[b.ProjectID] = append(billsBy[b.ProjectID], b)
	}
	paymentsBy := make(map[uuid.UUID][]entity.Payment, len(projects))
	for _, p := range payments {
		paymentsBy[p.ProjectID] = append(paymentsBy[p.ProjectID], p)
	}

	ledgers := make([]entity.ProjectLedger, len(projects))
	totals := make([]ledger.Totals, len(projects))
	for i, p := range projects {
		totals[i] = ledger.Aggregate(billsBy[p.ID], paymentsBy[p.ID])
		ledgers[i] = entity.ProjectLedger{Project: p, Totals: totals[i]}
	}
	return ledgers, ledger.AggregateProjects(totals), nil
}

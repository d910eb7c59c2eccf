package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/domain/invoice"
	"github.com/theomoutet/coach-portal/internal/httperr"
	"github.com/theomoutet/coach-portal/internal/models"
	"github.com/theomoutet/coach-portal/internal/storage"
)

// ErrAttachmentUpload marks a partial success: the invoice row exists but
// the file never reached object storage. The row is recognizable by its
// empty file key.
var ErrAttachmentUpload = errors.New("invoice stored but attachment upload failed")

type CreateInvoiceInput struct {
	ClientID    string
	Amount      float64
	Status      string
	DueDate     string
	FileName    string
	ContentType string
	File        io.Reader
}

// CreateInvoice inserts the row, then optionally uploads the attachment as
// an independent second step.
type CreateInvoice struct {
	repo     Repository
	uploader storage.Uploader
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewCreateInvoice(
	repo Repository,
	uploader storage.Uploader,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *CreateInvoice {
	return &CreateInvoice{
		repo:     repo,
		uploader: uploader,
		audit:    auditDisp,
		log:      log,
	}
}

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	actorID string,
	in CreateInvoiceInput,
) (*models.Invoice, error) {

	status := invoice.Status(in.Status)
	if status == "" {
		status = invoice.StatusPending
	}
	if !invoice.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_invoice_status")
	}
	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_invoice_amount")
	}

	inv := &models.Invoice{
		ID:       uuid.NewString(),
		ClientID: in.ClientID,
		Amount:   in.Amount,
		Status:   string(status),
		DueDate:  in.DueDate,
	}

	if err := uc.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "invoice_created",
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	if in.File == nil {
		return inv, nil
	}

	key := fmt.Sprintf("invoices/%s/%s", inv.ID, in.FileName)
	if err := uc.uploader.Upload(ctx, key, in.ContentType, in.File); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("invoice attachment upload failed")
		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   "invoice_file_upload_failed",
			Entity:   "invoice",
			EntityID: &inv.ID,
		})
		return inv, ErrAttachmentUpload
	}

	if err := uc.repo.SetInvoiceFileKey(ctx, inv.ID, key); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("invoice file key write failed")
		return inv, ErrAttachmentUpload
	}
	inv.FileKey = key

	return inv, nil
}

// DeleteInvoice issues the single irreversible delete.
type DeleteInvoice struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewDeleteInvoice(repo Repository, auditDisp *audit.Dispatcher) *DeleteInvoice {
	return &DeleteInvoice{repo: repo, audit: auditDisp}
}

func (uc *DeleteInvoice) Execute(ctx context.Context, actorID, invoiceID string) error {
	if err := uc.repo.DeleteInvoice(ctx, invoiceID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "invoice_deleted",
		Entity:   "invoice",
		EntityID: &invoiceID,
	})
	return nil
}

// FilterInvoices applies the in-memory, case-insensitive substring search
// over the owning client's name and email, without re-querying the store.
func FilterInvoices(invoices []models.Invoice, query string) []models.Invoice {
	if query == "" {
		return invoices
	}

	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if matchesQuery(query, inv.Client.FullName, inv.Client.Email) {
			out = append(out, inv)
		}
	}
	return out
}

package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/theomoutet/coach-portal/internal/auth"
	"github.com/theomoutet/coach-portal/internal/httperr"
	"github.com/theomoutet/coach-portal/internal/httpresp"
	"github.com/theomoutet/coach-portal/internal/middleware"
	"github.com/theomoutet/coach-portal/internal/models"
	"github.com/theomoutet/coach-portal/internal/usecase/account"
	ucadmin "github.com/theomoutet/coach-portal/internal/usecase/admin"
	"github.com/theomoutet/coach-portal/internal/validators"
)

type AdminHandler struct {
	repo          ucadmin.Repository
	loadOverview  *ucadmin.LoadOverview
	createAccount *account.CreateAccount
	deleteClient  *ucadmin.DeleteClient
	createInvoice *ucadmin.CreateInvoice
	deleteInvoice *ucadmin.DeleteInvoice
}

func NewAdminHandler(
	repo ucadmin.Repository,
	loadOverview *ucadmin.LoadOverview,
	createAccount *account.CreateAccount,
	deleteClient *ucadmin.DeleteClient,
	createInvoice *ucadmin.CreateInvoice,
	deleteInvoice *ucadmin.DeleteInvoice,
) *AdminHandler {
	return &AdminHandler{
		repo:          repo,
		loadOverview:  loadOverview,
		createAccount: createAccount,
		deleteClient:  deleteClient,
		createInvoice: createInvoice,
		deleteInvoice: deleteInvoice,
	}
}

// ======================================================
// OVERVIEW
// ======================================================

func (h *AdminHandler) Overview(c *gin.Context) {
	data, err := h.loadOverview.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "overview_load_failed",
			"Le chargement du tableau de bord a échoué.")
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AdminHandler) Sessions(c *gin.Context) {
	logs, err := h.repo.SessionLogs(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "sessions_load_failed",
			"Le chargement de l'historique des sessions a échoué.")
		return
	}
	httpresp.List(c, logs)
}

// ======================================================
// CLIENTS
// ======================================================

func (h *AdminHandler) ListClients(c *gin.Context) {
	profiles, err := h.repo.ClientProfiles(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "clients_load_failed",
			"Le chargement des clients a échoué.")
		return
	}

	httpresp.List(c, ucadmin.FilterClients(profiles, c.Query("query")))
}

type CreateClientRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"`
}

func (h *AdminHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.Normalize(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain",
			"Le domaine de l'adresse email ne semble pas valide.")
		return
	}

	profile, err := h.createAccount.Execute(c.Request.Context(), account.CreateInput{
		FullName:  req.FullName,
		Email:     email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Role:      models.RoleClient,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			httperr.BadRequest(c, "email_taken", "Cette adresse email est déjà utilisée.")
			return
		}
		if httperr.IsBusiness(err, "orphaned_credential") {
			// Partial failure: credential exists without a profile. Surfaced
			// distinctly so it can be reconciled, never reported as success.
			httperr.Internal(c, "orphaned_credential",
				"Identifiant créé mais profil manquant. Une réconciliation est nécessaire.")
			return
		}
		httperr.Internal(c, "client_create_failed", "La création du client a échoué.")
		return
	}

	httpresp.Created(c, gin.H{"profile": profile})
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)
	clientID := c.Param("id")

	if err := h.deleteClient.Execute(c.Request.Context(), actorID, clientID); err != nil {
		httperr.Internal(c, "client_delete_failed", "La suppression du client a échoué.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// INVOICES
// ======================================================

func (h *AdminHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.repo.Invoices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "invoices_load_failed",
			"Le chargement des factures a échoué.")
		return
	}

	httpresp.List(c, ucadmin.FilterInvoices(invoices, c.Query("query")))
}

// CreateInvoice accepts a multipart form: client_id, amount, status,
// due_date, plus an optional file attachment.
func (h *AdminHandler) CreateInvoice(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	clientID := c.PostForm("client_id")
	if clientID == "" {
		httperr.BadRequest(c, "invalid_request", "client_id est requis")
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Le montant doit être un nombre valide")
		return
	}

	in := ucadmin.CreateInvoiceInput{
		ClientID: clientID,
		Amount:   amount,
		Status:   c.PostForm("status"),
		DueDate:  c.PostForm("due_date"),
	}

	var file multipart.File
	if header, fErr := c.FormFile("file"); fErr == nil {
		file, err = header.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_file", "Le fichier joint est illisible.")
			return
		}
		defer file.Close()

		in.FileName = header.Filename
		in.ContentType = header.Header.Get("Content-Type")
		in.File = io.Reader(file)
	}

	inv, err := h.createInvoice.Execute(c.Request.Context(), actorID, in)
	if err != nil {
		if errors.Is(err, ucadmin.ErrAttachmentUpload) {
			// Row exists, file does not: partial success.
			c.JSON(http.StatusCreated, gin.H{
				"invoice": inv,
				"warning": gin.H{
					"code":    "file_upload_failed",
					"message": "Facture créée, mais l'envoi du fichier a échoué.",
				},
			})
			return
		}
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Données de facture invalides.")
			return
		}
		httperr.Internal(c, "invoice_create_failed", "La création de la facture a échoué.")
		return
	}

	httpresp.Created(c, gin.H{"invoice": inv})
}

func (h *AdminHandler) DeleteInvoice(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)
	invoiceID := c.Param("id")

	if err := h.deleteInvoice.Execute(c.Request.Context(), actorID, invoiceID); err != nil {
		httperr.Internal(c, "invoice_delete_failed", "La suppression de la facture a échoué.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

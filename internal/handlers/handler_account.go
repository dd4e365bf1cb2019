package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountPlanService portssvc.AccountPlanSvcFacade
}

func newAccountHandler(as portssvc.AccountPlanSvcFacade) *accountHandler {
	return &accountHandler{accountPlanService: as}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountPlanService portssvc.AccountPlanSvcFacade) {
	h := newAccountHandler(accountPlanService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/tree", h.getAccountTree)
		accounts.POST("", h.createAccount)
		accounts.POST("/seed", h.seedAccountPlan)
		accounts.POST("/resolve", h.resolveAccountCodes)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists every account of the caller's tenant ordered by code
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	accounts, err := h.accountPlanService.GetAccountPlan(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccountTree godoc
// @Summary Get the chart of accounts as a tree
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountTreeNodeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build account tree"
// @Security BearerAuth
// @Router /accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	tree, err := h.accountPlanService.GetAccountTree(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "build account tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTreeResponse(tree))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	account, err := h.accountPlanService.GetAccountByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// createAccount godoc
// @Summary Create an account
// @Description Adds a custom account under an existing parent
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed code"
// @Failure 404 {object} map[string]string "Parent not found"
// @Failure 409 {object} map[string]string "Code already in use"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.accountPlanService.CreateAccount(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "create account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description System accounts only accept name and description changes
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /accounts/{id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.accountPlanService.UpdateAccount(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// seedAccountPlan godoc
// @Summary Seed the default chart of accounts
// @Description Installs the default chart once per tenant
// @Tags accounts
// @Produce json
// @Success 201 {object} dto.SeedAccountPlanResponse
// @Failure 409 {object} map[string]string "Already seeded"
// @Failure 500 {object} map[string]string "Failed to seed account plan"
// @Security BearerAuth
// @Router /accounts/seed [post]
func (h *accountHandler) seedAccountPlan(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	created, err := h.accountPlanService.SeedAccountPlan(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondError(c, err, "seed account plan")
		return
	}
	c.JSON(http.StatusCreated, dto.SeedAccountPlanResponse{Created: created})
}

// resolveAccountCodes godoc
// @Summary Resolve plan codes to accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param codes body dto.ResolveAccountCodesRequest true "Codes to resolve"
// @Success 200 {object} map[string]dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "A code is not in the plan"
// @Security BearerAuth
// @Router /accounts/resolve [post]
func (h *accountHandler) resolveAccountCodes(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ResolveAccountCodesRequest
	if !bindJSON(c, &req) {
		return
	}

	resolved, err := h.accountPlanService.ResolveAccountCodes(c.Request.Context(), tenantID, req.Codes)
	if err != nil {
		respondError(c, err, "resolve account codes")
		return
	}
	res := make(map[string]dto.AccountResponse, len(resolved))
	for code, acc := range resolved {
		res[code] = dto.ToAccountResponse(&acc)
	}
	c.JSON(http.StatusOK, res)
}

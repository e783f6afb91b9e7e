package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/router/handler"
	"kwlab-go-backend/pkg/usecase/repository"
	"kwlab-go-backend/pkg/usecase/usecase/doccount"

	"github.com/labstack/echo/v4"
)

type Keyword interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Delete(c echo.Context) error
	Export(c echo.Context) error
	Insights(c echo.Context) error
	CollectDocCounts(c echo.Context) error
}

type keywordController struct {
	repo     repository.Keyword
	docRepo  repository.DocCount
	docCount *doccount.Service
}

func NewKeywordController(
	repo repository.Keyword,
	docRepo repository.DocCount,
	docCount *doccount.Service,
) Keyword {
	return &keywordController{
		repo:     repo,
		docRepo:  docRepo,
		docCount: docCount,
	}
}

func (ctrl *keywordController) List(c echo.Context) error {
	var input model.ListKeywordsInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}

	page, err := ctrl.repo.List(c.Request().Context(), input)
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (ctrl *keywordController) Get(c echo.Context) error {
	kw, err := ctrl.repo.Get(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		return handler.HandleError(c, err)
	}

	// Doc counts ride along when present.
	counts, err := ctrl.docRepo.GetByKeyword(c.Request().Context(), kw.Keyword)
	if err != nil {
		var notFound *model.NotFoundError
		if !errors.As(err, &notFound) {
			return handler.HandleError(c, err)
		}
		counts = nil
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"keyword":   kw,
		"docCounts": counts,
	})
}

func (ctrl *keywordController) Create(c echo.Context) error {
	var input model.CreateKeywordInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}
	if input.Keyword == "" {
		return handler.HandleError(c, model.NewInvalidParamError(errors.New("keyword is required")))
	}

	kw, err := ctrl.repo.Create(c.Request().Context(), input)
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, kw)
}

func (ctrl *keywordController) Delete(c echo.Context) error {
	if err := ctrl.repo.Delete(c.Request().Context(), model.ID(c.Param("id"))); err != nil {
		return handler.HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *keywordController) Export(c echo.Context) error {
	keywords, err := ctrl.repo.AllForExport(c.Request().Context())
	if err != nil {
		return handler.HandleError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="keywords.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	header := []string{
		"keyword", "monthly_pc_search", "monthly_mobile_search", "avg_monthly_search",
		"monthly_click_pc", "monthly_click_mobile", "ctr_pc", "ctr_mobile",
		"ad_depth", "competition", "seed", "created_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, kw := range keywords {
		row := []string{
			kw.Keyword,
			strconv.Itoa(kw.MonthlyPcSearch),
			strconv.Itoa(kw.MonthlyMobileSearch),
			strconv.Itoa(kw.AvgMonthlySearch),
			fmt.Sprintf("%.1f", kw.MonthlyClickPc),
			fmt.Sprintf("%.1f", kw.MonthlyClickMobile),
			fmt.Sprintf("%.2f", kw.CtrPc),
			fmt.Sprintf("%.2f", kw.CtrMobile),
			strconv.Itoa(kw.AdDepth),
			kw.Competition,
			kw.Seed,
			kw.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (ctrl *keywordController) Insights(c echo.Context) error {
	insights, err := ctrl.repo.Insights(c.Request().Context())
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, insights)
}

func (ctrl *keywordController) CollectDocCounts(c echo.Context) error {
	kw, err := ctrl.repo.Get(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		return handler.HandleError(c, err)
	}

	counts, err := ctrl.docCount.CollectForKeyword(c.Request().Context(), kw.Keyword)
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SeasonHandler manages the named date ranges exports are tagged with.
type SeasonHandler struct {
	DB *gorm.DB
}

func NewSeasonHandler(db *gorm.DB) *SeasonHandler {
	return &SeasonHandler{DB: db}
}

type seasonReq struct {
	Name      string  `json:"name" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   *string `json:"endDate"`
}

func (h *SeasonHandler) Create(c *gin.Context) {
	var req seasonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	start, err := util.ParseDate(req.StartDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	season := models.Season{Name: req.Name, StartDate: util.BangkokDay(start)}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := util.ParseDate(*req.EndDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
			return
		}
		day := util.BangkokDay(end)
		season.EndDate = &day
	}

	if err := h.DB.Create(&season).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create season")
		return
	}
	c.JSON(http.StatusOK, season)
}

func (h *SeasonHandler) List(c *gin.Context) {
	var seasons []models.Season
	if err := h.DB.Order("start_date DESC").Find(&seasons).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch seasons")
		return
	}
	c.JSON(http.StatusOK, seasons)
}

func (h *SeasonHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req seasonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	start, err := util.ParseDate(req.StartDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var season models.Season
	if err := h.DB.First(&season, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Season not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating season")
		}
		return
	}

	season.Name = req.Name
	season.StartDate = util.BangkokDay(start)
	season.EndDate = nil
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := util.ParseDate(*req.EndDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
			return
		}
		day := util.BangkokDay(end)
		season.EndDate = &day
	}

	if err := h.DB.Save(&season).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating season")
		return
	}
	c.JSON(http.StatusOK, season)
}

func (h *SeasonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.Season{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Season not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

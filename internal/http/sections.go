package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SectionsController exposes the active-section tracker.
type SectionsController struct{}

func NewSectionsController() *SectionsController {
	return &SectionsController{}
}

// visibilityReport carries the visibility ratio per section id, as measured
// by the client's viewport observer.
type visibilityReport struct {
	Ratios map[string]float64 `json:"ratios" binding:"required"`
}

// ReportVisibility feeds a visibility snapshot into the tracker and returns
// the resulting active section.
func (s *SectionsController) ReportVisibility(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "sections")
		return
	}

	var report visibilityReport
	if err := c.ShouldBindJSON(&report); err != nil {
		respondBadRequest(c, "ratios are required")
		return
	}

	if id, bad := outOfRangeRatio(report.Ratios); bad {
		respondBadRequest(c, "ratio out of range for section "+id)
		return
	}

	sess.Tracker.ReportVisibility(report.Ratios)
	c.JSON(http.StatusOK, gin.H{"active": sess.Tracker.ActiveSection()})
}

// outOfRangeRatio returns the first section whose reported ratio falls
// outside [0, 1]. Both the REST endpoint and the live channel reject such
// reports before they reach the tracker.
func outOfRangeRatio(ratios map[string]float64) (string, bool) {
	for id, ratio := range ratios {
		if ratio < 0 || ratio > 1 {
			return id, true
		}
	}
	return "", false
}

// Active returns the currently highlighted section.
func (s *SectionsController) Active(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "sections")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active":   sess.Tracker.ActiveSection(),
		"sections": sess.Tracker.Sections(),
	})
}

// ScrollTo returns the scroll target for a section, including the fixed
// header offset the client must subtract.
func (s *SectionsController) ScrollTo(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "sections")
		return
	}

	target := sess.Tracker.ScrollTo(c.Param("id"))
	if target == nil {
		respondNotFound(c, "section")
		return
	}

	c.JSON(http.StatusOK, target)
}

package http

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/content"
	"github.com/ghassen-kharrat/portfolio/internal/translations"
	"github.com/ghassen-kharrat/portfolio/internal/visitor"
)

// PagesController renders the public pages. Every page shares the same
// presentation shell data: document attributes derived from the visitor's
// preferences, the translated navigation, the toast stack and the section
// tracker state.
type PagesController struct{}

func NewPagesController() *PagesController {
	return &PagesController{}
}

// navSection is one entry of the section navigation.
type navSection struct {
	ID     string
	Title  string
	Active bool
}

func (p *PagesController) basePageData(c *gin.Context) gin.H {
	sess := GetShell(c)
	locale := sess.Prefs.Locale()
	doc := sess.Prefs.Document()
	active := sess.Tracker.ActiveSection()

	nav := make([]navSection, 0, len(content.Sections))
	for _, section := range content.Sections {
		nav = append(nav, navSection{
			ID:     section.ID,
			Title:  translations.T(locale, section.TitleKey),
			Active: section.ID == active,
		})
	}

	analyticsData := GetAnalyticsTemplateData(c)

	return gin.H{
		"Doc":           doc,
		"Locale":        locale,
		"T":             translations.Catalog(locale),
		"Nav":           nav,
		"ActiveSection": active,
		"Notifications": sess.Bus.List(),
		"Owner":         content.Owner,
		"Year":          time.Now().Year(),
		"CSRFField":     template.HTML(visitor.CSRFTokenField(c)),
		"Analytics":     analyticsData,
	}
}

// Home renders the single-page layout with every portfolio section.
func (p *PagesController) Home(c *gin.Context) {
	data := p.basePageData(c)
	data["Projects"] = content.Projects
	data["Skills"] = content.Skills
	c.HTML(http.StatusOK, "home", data)
}

// About renders the standalone about page.
func (p *PagesController) About(c *gin.Context) {
	data := p.basePageData(c)
	c.HTML(http.StatusOK, "about", data)
}

// Projects renders the full project list.
func (p *PagesController) Projects(c *gin.Context) {
	data := p.basePageData(c)
	data["Projects"] = content.Projects
	c.HTML(http.StatusOK, "projects", data)
}

// Contact renders the contact form page.
func (p *PagesController) Contact(c *gin.Context) {
	data := p.basePageData(c)
	c.HTML(http.StatusOK, "contact", data)
}

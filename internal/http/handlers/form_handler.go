package handlers

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/models"
	"github.com/adcopy-studio/backend/internal/render"
	"github.com/adcopy-studio/backend/internal/services"
)

const autoDetect = "Auto-detect"

// FormHandler serves the single-page generation form.
type FormHandler struct {
	copyService *services.CopyService
	log         *zap.Logger
	tmpl        *template.Template
}

func NewFormHandler(copyService *services.CopyService, log *zap.Logger) *FormHandler {
	return &FormHandler{
		copyService: copyService,
		log:         log,
		tmpl:        template.Must(template.New("form").Parse(formTemplate)),
	}
}

type formResult struct {
	Tone         models.Tone
	ToneDetected bool
	Degraded     bool
	Headline     string
	Description  string
	Hashtags     []string
	CTA          string
	FileName     string
	FileBody     string
}

type formPage struct {
	Brand    string
	Product  string
	Audience string
	Tone     string
	Tones    []models.Tone
	Error    string
	Result   *formResult
}

func (h *FormHandler) Show(c *fiber.Ctx) error {
	return h.render(c, formPage{Tone: autoDetect, Tones: models.AllTones})
}

func (h *FormHandler) Submit(c *fiber.Ctx) error {
	page := formPage{
		Brand:    c.FormValue("brand_name"),
		Product:  c.FormValue("product_description"),
		Audience: c.FormValue("target_audience"),
		Tone:     c.FormValue("tone"),
		Tones:    models.AllTones,
	}

	brief := models.CampaignBrief{
		BrandName:          page.Brand,
		ProductDescription: page.Product,
		TargetAudience:     page.Audience,
	}
	if err := brief.Validate(); err != nil {
		page.Error = "Please fill in all fields"
		return h.render(c, page)
	}
	if page.Tone != "" && page.Tone != autoDetect {
		tone, err := models.ParseTone(page.Tone)
		if err != nil {
			page.Error = err.Error()
			return h.render(c, page)
		}
		brief.Tone = &tone
	}

	result, err := h.copyService.Generate(c.Context(), brief)

	ad := result.Copy
	degraded := false
	if err != nil {
		ad = models.DegradedCopy(err)
		degraded = true
	}

	hashtags := make([]string, 0, len(ad.Hashtags))
	for _, tag := range ad.Hashtags {
		hashtags = append(hashtags, render.NormalizeHashtag(tag))
	}

	page.Result = &formResult{
		Tone:         result.Tone,
		ToneDetected: result.ToneDetected,
		Degraded:     degraded,
		Headline:     ad.Headline,
		Description:  ad.Description,
		Hashtags:     hashtags,
		CTA:          ad.CTA,
		FileName:     render.FileName(page.Brand),
		FileBody:     render.Text(ad),
	}
	return h.render(c, page)
}

// Download echoes the already-rendered text back as a file attachment,
// so no second generation call is made.
func (h *FormHandler) Download(c *fiber.Ctx) error {
	filename := c.FormValue("filename")
	content := c.FormValue("content")
	if filename == "" || content == "" {
		return c.Status(fiber.StatusBadRequest).SendString("nothing to download")
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(content)
}

func (h *FormHandler) render(c *fiber.Ctx, page formPage) error {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		h.log.Error("template render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

const formTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Marketing Copy Generator</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; font-weight: bold; }
input[type=text], textarea, select { width: 100%; padding: .5rem; margin-top: .25rem; }
button { margin-top: 1.5rem; padding: .6rem 1.2rem; }
.error { color: #b00020; margin-top: 1rem; }
.result { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin-top: 2rem; }
.degraded { border-color: #b00020; }
.tone { color: #555; }
</style>
</head>
<body>
<h1>AI Marketing Copy Generator</h1>
<p>Generate engaging marketing copy tailored to your brand and audience.</p>

<form method="post" action="/">
  <label for="brand_name">Brand Name</label>
  <input type="text" id="brand_name" name="brand_name" value="{{.Brand}}" placeholder="e.g., EcoGlow">

  <label for="product_description">Product/Service Description</label>
  <textarea id="product_description" name="product_description" rows="3"
    placeholder="e.g., Sustainable bamboo water bottles that keep drinks cold for 24 hours">{{.Product}}</textarea>

  <label for="target_audience">Target Audience</label>
  <input type="text" id="target_audience" name="target_audience" value="{{.Audience}}"
    placeholder="e.g., Eco-conscious young professionals who are active outdoors">

  <label for="tone">Tone of Voice</label>
  <select id="tone" name="tone">
    <option{{if eq .Tone "Auto-detect"}} selected{{end}}>Auto-detect</option>
    {{range .Tones}}<option{{if eq (printf "%s" .) $.Tone}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>

  <button type="submit">Generate Ad Copy</button>
</form>

{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

{{with .Result}}
<div class="result{{if .Degraded}} degraded{{end}}">
  {{if .ToneDetected}}<p class="tone">Detected tone: {{.Tone}}</p>{{end}}
  <h2>{{.Headline}}</h2>
  <p>{{.Description}}</p>
  <p>{{range .Hashtags}}{{.}} {{end}}</p>
  <p><strong>{{.CTA}}</strong></p>
  {{if not .Degraded}}
  <form method="post" action="/download">
    <input type="hidden" name="filename" value="{{.FileName}}">
    <input type="hidden" name="content" value="{{.FileBody}}">
    <button type="submit">Download Copy</button>
  </form>
  {{end}}
</div>
{{end}}
</body>
</html>
`

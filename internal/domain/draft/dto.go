package draft

import "gorm.io/datatypes"

// PdfOptions mirrors the JSON stored in drafts.pdf_options.
type PdfOptions struct {
	PageSize    string  `json:"page_size"`
	Orientation string  `json:"orientation"`
	MarginTop   float64 `json:"margin_top"`
	MarginRight float64 `json:"margin_right"`
	MarginBot   float64 `json:"margin_bottom"`
	MarginLeft  float64 `json:"margin_left"`
	Font        string  `json:"font"`
	FontSize    int     `json:"font_size"`
}

type SaveDraftDTO struct {
	CustomValueTemplate string         `json:"custom_value_template" binding:"required"`
	PdfOptions          datatypes.JSON `json:"pdf_options"`
}

type DecisionDTO struct {
	Note string `json:"note"`
}

type RenderDTO struct {
	HTML       string         `json:"html" binding:"required"`
	PdfOptions datatypes.JSON `json:"pdf_options"`
}

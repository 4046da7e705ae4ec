package api

import (
	"github.com/mylikerahul/chatbot-engine/chat"
	"github.com/mylikerahul/chatbot-engine/locale"
	"github.com/mylikerahul/chatbot-engine/product"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type serviceInfoResponse struct {
	Service       string `json:"service"`
	Version       string `json:"version"`
	Status        string `json:"status"`
	MultiLanguage bool   `json:"multi_language"`
}

type languagesResponse struct {
	Default   string        `json:"default"`
	Supported []locale.Info `json:"supported"`
}

type chatRequest struct {
	Query       string         `json:"query"`
	Products    []product.Item `json:"products"`
	PageURL     string         `json:"page_url"`
	PageTitle   string         `json:"page_title"`
	PageContent string         `json:"page_content"`
	SiteType    string         `json:"site_type"`
	PageType    string         `json:"page_type"`
	Language    string         `json:"language"`
}

type clearRequest struct {
	Language string `json:"language"`
}

type chatResponse struct {
	Answer            string         `json:"answer"`
	Thoughts          []string       `json:"thoughts"`
	FilteredProducts  []product.Item `json:"filtered_products,omitempty"`
	Intent            string         `json:"intent"`
	Confidence        float64        `json:"confidence"`
	FilterDescription string         `json:"filter_description,omitempty"`
	ProcessingTime    float64        `json:"processing_time"`
	Language          string         `json:"language"`
	TraceID           string         `json:"trace_id"`
}

func transformChatResponse(resp chat.Response) chatResponse {
	return chatResponse{
		Answer:            resp.Answer,
		Thoughts:          resp.Thoughts,
		FilteredProducts:  resp.FilteredItems,
		Intent:            string(resp.Intent),
		Confidence:        resp.Confidence,
		FilterDescription: resp.FilterDescription,
		ProcessingTime:    resp.ProcessingTime.Seconds(),
		Language:          resp.Language,
		TraceID:           resp.TraceID,
	}
}

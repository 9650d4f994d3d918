// Package handler exposes the movies GraphQL schema over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// graphQLRequest is the POST body of a GraphQL request.
type graphQLRequest struct {
	Query         string         `json:"query" binding:"required"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// graphQLQuery is a GET request; variables arrive as a JSON-encoded string.
type graphQLQuery struct {
	Query         string `form:"query" binding:"required"`
	OperationName string `form:"operationName"`
	Variables     string `form:"variables"`
}

// GraphQLHandler executes GraphQL requests against a schema.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler creates a GraphQLHandler for s.
func NewGraphQLHandler(s graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: s}
}

// Serve handles GET /graphql?query=... and POST /graphql.
//
// A malformed request is answered with 400. Once the query has been
// parsed, resolver failures are reported in the "errors" array with 200.
func (h *GraphQLHandler) Serve(c *gin.Context) {
	req, err := bind(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	res := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})
	if res.HasErrors() {
		slog.Warn("graphql request finished with errors",
			"operation", req.OperationName,
			"errors", len(res.Errors),
			"first", res.Errors[0].Message,
		)
	}

	c.JSON(http.StatusOK, res)
}

func bind(c *gin.Context) (graphQLRequest, error) {
	if c.Request.Method != http.MethodGet {
		var req graphQLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return graphQLRequest{}, fmt.Errorf("invalid request body: %w", err)
		}
		return req, nil
	}

	var q graphQLQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return graphQLRequest{}, fmt.Errorf("invalid query parameters: %w", err)
	}
	req := graphQLRequest{Query: q.Query, OperationName: q.OperationName}
	if q.Variables != "" {
		if err := json.Unmarshal([]byte(q.Variables), &req.Variables); err != nil {
			return graphQLRequest{}, errors.New("variables must be a JSON object")
		}
	}
	return req, nil
}

func errorResponse(err error) gin.H {
	return gin.H{"errors": []gin.H{{"message": err.Error()}}}
}

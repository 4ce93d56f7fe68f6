package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/pkg/period"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	recordType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RouteRecord",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.Int},
			"conversation_id": &graphql.Field{Type: graphql.Int},
			"message_ts":      &graphql.Field{Type: graphql.Int},
			"distance_km":     &graphql.Field{Type: graphql.Float},
			"raw_text":        &graphql.Field{Type: graphql.String},
		},
	})

	summaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Summary",
		Fields: graphql.Fields{
			"from":     &graphql.Field{Type: graphql.String},
			"to":       &graphql.Field{Type: graphql.String},
			"total_km": &graphql.Field{Type: graphql.Float},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"totalDistance": &graphql.Field{
				Type:        summaryType,
				Description: "Distance total for a conversation over a named period",
				Args: graphql.FieldConfigArgument{
					"conversation_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"period":          &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: string(domain.PeriodThisMonth)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := int64(p.Args["conversation_id"].(int))
					name := domain.PeriodName(p.Args["period"].(string))
					rng, total, err := deps.Reports.TotalForPeriod(p.Context, id, name)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{
						"from":     rng.Start.Format(period.DateLayout),
						"to":       rng.End.Format(period.DateLayout),
						"total_km": total,
					}, nil
				},
			},
			"records": &graphql.Field{
				Type:        graphql.NewList(recordType),
				Description: "Persisted route records for a conversation, newest first",
				Args: graphql.FieldConfigArgument{
					"conversation_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"offset":          &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"limit":           &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 50},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := int64(p.Args["conversation_id"].(int))
					offset := p.Args["offset"].(int)
					limit := p.Args["limit"].(int)
					records, _, err := deps.Reports.ListRecords(p.Context, id, offset, limit)
					return records, err
				},
			},
			"basePoint": &graphql.Field{
				Type:        graphql.String,
				Description: "Effective route start point for a conversation",
				Args: graphql.FieldConfigArgument{
					"conversation_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := int64(p.Args["conversation_id"].(int))
					return deps.Settings.BasePoint(p.Context, id), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}

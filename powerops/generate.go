// Package powerops is the typed client of the PowerOps data model, which
// describes SHOP optimisation cases, their scenarios and models, the files
// they run with and the bid matrices and alerts they produce.
//
//	client := powerops.NewClient(dmsClient)
//	cases, err := client.ShopCase.Query(core.Where(shopcase.StatusEQ("done"))).
//	    ShopFiles().
//	    Query(ctx)
package powerops

//go:generate go run github.com/powerops/dmgen/cmd/dmgen generate --model model.yaml --target . --package github.com/powerops/dmgen/powerops

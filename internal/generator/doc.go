// Package generator produces generator-level neutrino truth for testing and
// exercising the data format.
//
// It samples interactions (energy, current, mode, struck nucleon, DIS
// kinematics and a vertex inside the detector box) from a config.Config and
// translates each one into a models.Neutrino, the way a generator truth
// translation step fills records before handing them to a NeutrinoSet.
//
// Main Types:
//   - Generator: samples interactions and builds the NeutrinoSet
//
// Usage:
//
//	cfg, err := config.LoadConfig("config/nugen.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	set, err := generator.New(cfg).Generate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, rec := range set.All() {
//	    fmt.Println(i, rec)
//	}
package generator

// Package loader registers the HTTP features of the serve command.
//
// A feature implements Feature: it names itself, says whether it is enabled and
// mounts its routes on a fiber.Router. Manager loads the registered features in
// order and stops at the first one that fails, logging each feature it loads or
// skips.
//
//	mgr := loader.NewManager(logger)
//	mgr.Register(compare.NewFeature(svc))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader

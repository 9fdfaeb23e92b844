// Package wardrobe is the public entry point: it creates backends from a
// Config and renders wardrobe contents and readiness reports as text.
//
// Example:
//
//	w, err := wardrobe.Open(types.Config{Backend: types.BackendMemory})
//	if err != nil {
//	    return err
//	}
//	defer w.Detach()
//	report, err := wardrobe.Run(w, inventory)
package wardrobe

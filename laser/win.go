package laser

// WinEvaluator turns a stream of per-trace hit results into a single win event per solve.
//
// It fires on the transition from not hitting the receiver to hitting it, and stays quiet while the
// beam keeps hitting. The beam must leave the receiver before it can fire again.
type WinEvaluator struct {
	// Called each time the evaluator fires
	OnWin func()
	hit   bool
}

func NewWinEvaluator(onWin func()) *WinEvaluator {
	return &WinEvaluator{OnWin: onWin}
}

// Observe records the latest hit result and reports whether it triggered a win.
func (w *WinEvaluator) Observe(hit bool) bool {
	fired := hit && !w.hit
	w.hit = hit
	if fired && w.OnWin != nil {
		w.OnWin()
	}
	return fired
}

// Hit returns the last observed result.
func (w *WinEvaluator) Hit() bool {
	return w.hit
}

// Reset forgets the last observed result so the next hit fires again.
func (w *WinEvaluator) Reset() {
	w.hit = false
}

package catcher

// CheckCollision resolves one block against the basket.
//
// A block whose span fits inside the basket once it reaches the basket's
// line is caught: matching colors score, others hurt. A matching block
// that misses hurts once, then keeps falling harmlessly until it leaves
// the viewport.
func (s *Session) CheckCollision(b *Block) {
	if !b.IsAlive() {
		return
	}

	basket := s.Basket.Bounds()
	box := b.Bounds()

	if box.Above(basket) {
		return
	}

	if box.WithinX(basket) {
		if b.Kill() {
			s.OnScreen--
		}

		if b.Color == s.Basket.Color {
			s.Score.Change(float64(b.Strength))
		} else {
			s.Health.Change(-float64(b.Strength))
		}
		return
	}

	// Missed a block the player should have caught
	if b.Color == s.Basket.Color && b.Strength > 0 {
		s.Health.Change(-float64(b.Strength))
		b.Strength = 0
	}

	if b.IsAlive() && b.Y > float64(s.viewH) {
		b.Kill()
		s.OnScreen--
	}
}

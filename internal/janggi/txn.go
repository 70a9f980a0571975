package janggi

// txn 是单步试走：记下走子和被吃子，rollback 恢复到走之前，哈希一起恢复。
// 不支持嵌套：同一时间只能有一个未结束的 txn。
type txn struct {
	b        *Board
	mover    PieceID
	from, to int
	taken    PieceID
}

// begin 试走 from→to。调用方保证 from 上有子。
func (b *Board) begin(from, to Coord) txn {
	t := txn{
		b:     b,
		mover: b.idAt(from),
		from:  indexOf(from),
		to:    indexOf(to),
		taken: b.idAt(to),
	}
	if t.taken != 0 {
		b.lift(t.taken)
		b.pieces[t.taken].captured = true
	}
	b.lift(t.mover)
	b.put(t.mover, t.to)
	return t
}

func (t txn) rollback() {
	b := t.b
	b.lift(t.mover)
	b.put(t.mover, t.from)
	if t.taken != 0 {
		b.pieces[t.taken].captured = false
		b.put(t.taken, t.to)
	}
}

package circuit

import (
	"darkpool/domain/book"
	"darkpool/domain/oblivious"
)

// AddOrder places ord into the first inactive slot and returns the new book
// and a receipt naming the slot. Every slot is visited whether or not the
// order has already been placed; when the book is full the state comes back
// unchanged and the receipt's Added field is 0. OrderCount grows by one
// exactly when the order landed.
func AddOrder(ob book.OrderBook, ord book.Order) (book.OrderBook, book.InsertReceipt) {
	var added oblivious.Bit
	var slot uint64

	for i := 0; i < book.MaxOrders; i++ {
		cur := &ob.Slots[i]

		isEmpty := oblivious.Not(oblivious.Bit(cur.Active))
		shouldAdd := oblivious.And(isEmpty, oblivious.Not(added))

		cur.Price = oblivious.Select(shouldAdd, ord.Price, cur.Price)
		cur.Amount = oblivious.Select(shouldAdd, ord.Amount, cur.Amount)
		cur.Side = book.Side(oblivious.Select(shouldAdd, uint64(ord.Side), uint64(cur.Side)))
		cur.Kind = book.Kind(oblivious.Select(shouldAdd, uint64(ord.Kind), uint64(cur.Kind)))
		cur.Owner.Hi = oblivious.Select(shouldAdd, ord.Owner.Hi, cur.Owner.Hi)
		cur.Owner.Lo = oblivious.Select(shouldAdd, ord.Owner.Lo, cur.Owner.Lo)
		// The slot goes live regardless of what the caller put in Active.
		cur.Active = oblivious.Select(shouldAdd, 1, cur.Active)

		slot = oblivious.Select(shouldAdd, uint64(i), slot)
		added = oblivious.Or(added, shouldAdd)
	}

	ob.OrderCount += uint64(added)

	return ob, book.InsertReceipt{Added: uint64(added), Slot: slot}
}

// MatchOrders runs one full pass over all ordered slot pairs and commits at
// most the first eligible buy/sell crossing, in fixed row-major order. The
// loop always covers all MaxOrders² pairs; once a pair has committed, the
// alreadyMatched bit selects every later candidate out. Filled slots have
// their amounts reduced and are deactivated at zero, but OrderCount is not
// touched; it only tracks insertions and cancellations.
func MatchOrders(ob book.OrderBook) (book.OrderBook, book.MatchResult) {
	var res book.MatchResult
	var matched oblivious.Bit

	for i := 0; i < book.MaxOrders; i++ {
		for j := 0; j < book.MaxOrders; j++ {
			buy := ob.Slots[i]
			sell := ob.Slots[j]

			isBuy := oblivious.Eq(uint64(buy.Side), uint64(book.Buy))
			isSell := oblivious.Eq(uint64(sell.Side), uint64(book.Sell))
			bothActive := oblivious.And(oblivious.Bit(buy.Active), oblivious.Bit(sell.Active))
			distinctOwners := oblivious.Not(oblivious.Eq128(
				buy.Owner.Hi, buy.Owner.Lo, sell.Owner.Hi, sell.Owner.Lo))

			buyIsMarket := oblivious.Eq(uint64(buy.Kind), uint64(book.Market))
			sellIsMarket := oblivious.Eq(uint64(sell.Kind), uint64(book.Market))
			limitCross := oblivious.Ge(buy.Price, sell.Price)
			priceOK := oblivious.Or(oblivious.Or(buyIsMarket, sellIsMarket), limitCross)

			canMatch := oblivious.And(isBuy, isSell)
			canMatch = oblivious.And(canMatch, bothActive)
			canMatch = oblivious.And(canMatch, distinctOwners)
			canMatch = oblivious.And(canMatch, priceOK)
			canMatch = oblivious.And(canMatch, oblivious.Not(matched))

			// Market buy takes the sell's price, market sell the buy's;
			// two limits meet at the midpoint. The carry-free average
			// (a&b)+((a^b)>>1) equals floor((a+b)/2) without overflow.
			mid := (buy.Price & sell.Price) + ((buy.Price ^ sell.Price) >> 1)
			price := oblivious.Select(buyIsMarket, sell.Price,
				oblivious.Select(sellIsMarket, buy.Price, mid))
			amount := oblivious.Min(buy.Amount, sell.Amount)

			res.Matched = oblivious.Select(canMatch, 1, res.Matched)
			res.MatchPrice = oblivious.Select(canMatch, price, res.MatchPrice)
			res.MatchAmount = oblivious.Select(canMatch, amount, res.MatchAmount)
			res.BuyOrderID = oblivious.Select(canMatch, uint64(i), res.BuyOrderID)
			res.SellOrderID = oblivious.Select(canMatch, uint64(j), res.SellOrderID)

			// amount <= both sides by construction, so the subtractions
			// cannot wrap even on the iterations that do not commit.
			newBuyAmt := buy.Amount - amount
			newSellAmt := sell.Amount - amount

			ob.Slots[i].Amount = oblivious.Select(canMatch, newBuyAmt, buy.Amount)
			ob.Slots[j].Amount = oblivious.Select(canMatch, newSellAmt, sell.Amount)

			buyDrained := oblivious.And(canMatch, oblivious.Eq(newBuyAmt, 0))
			sellDrained := oblivious.And(canMatch, oblivious.Eq(newSellAmt, 0))
			ob.Slots[i].Active = oblivious.Select(buyDrained, 0, ob.Slots[i].Active)
			ob.Slots[j].Active = oblivious.Select(sellDrained, 0, ob.Slots[j].Active)

			matched = oblivious.Or(matched, canMatch)
		}
	}

	return ob, res
}

// CancelOrder deactivates the addressed slot when it is active and owned by
// owner, decrementing OrderCount in the same blend. A wrong or stale slot
// index, a foreign owner, or an inactive slot all leave the book untouched;
// none of them is an error. The scan still visits every slot.
func CancelOrder(ob book.OrderBook, slot uint64, owner book.UserID) book.OrderBook {
	for k := 0; k < book.MaxOrders; k++ {
		cur := &ob.Slots[k]

		isTarget := oblivious.Eq(uint64(k), slot)
		isOwner := oblivious.Eq128(cur.Owner.Hi, cur.Owner.Lo, owner.Hi, owner.Lo)
		isActive := oblivious.Bit(cur.Active)

		shouldCancel := oblivious.And(oblivious.And(isTarget, isOwner), isActive)

		cur.Active = oblivious.Select(shouldCancel, 0, cur.Active)
		ob.OrderCount -= uint64(shouldCancel)
	}

	return ob
}

// BookDepth aggregates active volume into the fixed 20-bucket summary:
// buckets 0-9 hold the buy-side total, 10-19 the sell-side total. Each
// bucket runs its own full scan, matching the fixed work pattern of the
// substrate. priceLevels is accepted for wire compatibility and reserved;
// no per-price bucketing happens yet.
func BookDepth(ob book.OrderBook, priceLevels uint64) book.DepthSnapshot {
	_ = priceLevels

	var depth book.DepthSnapshot

	for level := 0; level < 10; level++ {
		var vol uint64
		for j := 0; j < book.MaxOrders; j++ {
			o := &ob.Slots[j]
			isBuy := oblivious.Eq(uint64(o.Side), uint64(book.Buy))
			take := oblivious.And(isBuy, oblivious.Bit(o.Active))
			vol += oblivious.Select(take, o.Amount, 0)
		}
		depth[level] = vol
	}

	for level := 10; level < book.DepthLevels; level++ {
		var vol uint64
		for j := 0; j < book.MaxOrders; j++ {
			o := &ob.Slots[j]
			isSell := oblivious.Eq(uint64(o.Side), uint64(book.Sell))
			take := oblivious.And(isSell, oblivious.Bit(o.Active))
			vol += oblivious.Select(take, o.Amount, 0)
		}
		depth[level] = vol
	}

	return depth
}

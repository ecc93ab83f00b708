// Package circuit holds the four confidential order-book operations in the
// form the multi-party substrate evaluates them: straight-line passes over
// the whole slot array with every conditional effect expressed as a blend
// from the oblivious package.
//
// The rules for code in this package are strict:
//
//   - no branch, break, continue or early return may depend on order data;
//   - every loop runs its full fixed bound (MaxOrders, MaxOrders², 20);
//   - every slot is read and written the same way on every iteration.
//
// Functions are pure: they take the current book value and return the next
// one. Encryption never appears here; the cluster package opens and seals
// around these calls.
package circuit

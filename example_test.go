package strq_test

import (
	"fmt"

	"github.com/tychoish/strq"
)

func Example() {
	q, err := strq.New()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer q.Destroy()

	for _, v := range []string{"banana", "apple10", "apple2"} {
		if err := q.InsertTail(v); err != nil {
			fmt.Println(err)
			return
		}
	}

	if err := q.Sort(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q)

	_ = q.Reverse()
	first, _ := q.RemoveHead()
	fmt.Println(first, q.Size())

	// Output:
	// [apple2 apple10 banana]
	// banana 2
}

package xmlpick_test

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/lestrrat-go/xmlpick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCallback(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		r := xmlpick.New()
		err := r.RegisterCallback("", func(_ *xmlpick.Reader, _ *etree.Element) {})
		if !assert.ErrorIs(t, err, xmlpick.ErrInvalidPath, `registering an empty path should fail`) {
			return
		}
	})
	t.Run("DelimiterOnlyPath", func(t *testing.T) {
		r := xmlpick.New()
		err := r.RegisterCallback("///", func(_ *xmlpick.Reader, _ *etree.Element) {})
		if !assert.ErrorIs(t, err, xmlpick.ErrInvalidPath, `registering a path with no tag names should fail`) {
			return
		}
	})
	t.Run("NilCallback", func(t *testing.T) {
		r := xmlpick.New()
		err := r.RegisterCallback("/root/item/", nil)
		if !assert.ErrorIs(t, err, xmlpick.ErrNilCallback, `registering a nil callback should fail`) {
			return
		}
	})
	t.Run("NormalizedVariantsShareOneList", func(t *testing.T) {
		// /Root/Item (no trailing delimiter) and /root/item/ are the
		// same registration target, so both callbacks fire per match.
		r := xmlpick.New()
		var fired []string
		require.NoError(t, r.RegisterCallback("/Root/Item", func(_ *xmlpick.Reader, _ *etree.Element) {
			fired = append(fired, "first")
		}), `RegisterCallback should succeed`)
		require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, _ *etree.Element) {
			fired = append(fired, "second")
		}), `RegisterCallback should succeed`)

		require.NoError(t, r.ParseString(context.TODO(), `<root><item>x</item></root>`), `ParseString should succeed`)
		require.Equal(t, []string{"first", "second"}, fired, `both registrations should fire, in registration order`)
	})
}

func TestPaths(t *testing.T) {
	r := xmlpick.New()
	nop := func(_ *xmlpick.Reader, _ *etree.Element) {}
	require.NoError(t, r.RegisterCallback("/B/", nop), `RegisterCallback should succeed`)
	require.NoError(t, r.RegisterCallback("/a/c", nop), `RegisterCallback should succeed`)
	require.NoError(t, r.RegisterCallback("/b", nop), `RegisterCallback should succeed`)

	if !assert.Equal(t, []string{"/b/", "/a/c/"}, r.Paths(), `paths are normalized and ordered by first registration`) {
		return
	}
}

func TestMatchExactCaseInsensitive(t *testing.T) {
	r := xmlpick.New()

	var count int
	var tag, text string
	require.NoError(t, r.RegisterCallback("/Root/Item/", func(_ *xmlpick.Reader, elem *etree.Element) {
		count++
		tag = elem.Tag
		text = elem.Text()
	}), `RegisterCallback should succeed`)

	if !assert.NoError(t, r.ParseString(context.TODO(), `<ROOT><Item>x</Item></ROOT>`), `ParseString should succeed`) {
		return
	}

	if !assert.Equal(t, 1, count, `callback should fire exactly once`) {
		return
	}
	if !assert.Equal(t, "item", tag, `materialized tag should be normalized`) {
		return
	}
	if !assert.Equal(t, "x", text, `text content should be preserved`) {
		return
	}
}

func TestNonMatchingPathNeverFires(t *testing.T) {
	r := xmlpick.New()

	var count int
	require.NoError(t, r.RegisterCallback("/root/other/", func(_ *xmlpick.Reader, _ *etree.Element) {
		count++
	}), `RegisterCallback should succeed`)

	if !assert.NoError(t, r.ParseString(context.TODO(), `<root><item>x</item></root>`), `ParseString should succeed`) {
		return
	}
	if !assert.Equal(t, 0, count, `non-matching path should never fire`) {
		return
	}
}

func TestSubtreeReconstruction(t *testing.T) {
	r := xmlpick.New()

	var got *etree.Element
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, elem *etree.Element) {
		got = elem
	}), `RegisterCallback should succeed`)

	const input = `<root><item><a k="1">t</a><![CDATA[c]]></item></root>`
	require.NoError(t, r.ParseString(context.TODO(), input), `ParseString should succeed`)
	require.NotNil(t, got, `callback should have fired`)

	a := got.SelectElement("a")
	require.NotNil(t, a, `child element a should exist`)
	if !assert.Equal(t, "1", a.SelectAttrValue("k", ""), `attribute should be preserved`) {
		return
	}
	if !assert.Equal(t, "t", a.Text(), `child text should be preserved`) {
		return
	}

	// The CDATA content follows the child element in document order.
	children := got.Child
	require.NotEmpty(t, children, `item should have children`)
	cd, ok := children[len(children)-1].(*etree.CharData)
	require.True(t, ok, `last child should be character data`)
	if !assert.Equal(t, "c", cd.Data, `CDATA content should be preserved after the child element`) {
		return
	}
}

func TestAttributeValueEscaping(t *testing.T) {
	r := xmlpick.New()

	var got *etree.Element
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, elem *etree.Element) {
		got = elem
	}), `RegisterCallback should succeed`)

	const input = `<root><item note='he said "hi" &amp; left'/></root>`
	require.NoError(t, r.ParseString(context.TODO(), input), `ParseString should succeed`)
	require.NotNil(t, got, `callback should have fired`)

	if !assert.Equal(t, `he said "hi" & left`, got.SelectAttrValue("note", ""), `attribute values with quotes and entities should survive reconstruction`) {
		return
	}
}

func TestMultipleCallbacksFireInRegistrationOrder(t *testing.T) {
	r := xmlpick.New()

	var fired []string
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, _ *etree.Element) {
		fired = append(fired, "a")
	}), `RegisterCallback should succeed`)
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, _ *etree.Element) {
		fired = append(fired, "b")
	}), `RegisterCallback should succeed`)

	require.NoError(t, r.ParseString(context.TODO(), `<root><item/><item/></root>`), `ParseString should succeed`)
	if !assert.Equal(t, []string{"a", "b", "a", "b"}, fired, `callbacks should fire in registration order for each match`) {
		return
	}
}

func TestRepeatedMatches(t *testing.T) {
	r := xmlpick.New()

	var texts []string
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, elem *etree.Element) {
		texts = append(texts, elem.Text())
	}), `RegisterCallback should succeed`)

	const input = `<root><item>1</item><item>2</item><item>3</item></root>`
	require.NoError(t, r.ParseString(context.TODO(), input), `ParseString should succeed`)
	if !assert.Equal(t, []string{"1", "2", "3"}, texts, `each sibling should fire once, with only its own subtree`) {
		return
	}
}

func TestOverlappingPaths(t *testing.T) {
	// A path may be an ancestor-in-progress for one registration
	// while another registration is dispatched beneath it; both
	// accumulators capture their own subtrees.
	r := xmlpick.New()

	var order []string
	require.NoError(t, r.RegisterCallback("/root/", func(_ *xmlpick.Reader, elem *etree.Element) {
		order = append(order, "root")
		assert.Len(t, elem.SelectElements("item"), 2, `root subtree should contain both items`)
	}), `RegisterCallback should succeed`)
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, elem *etree.Element) {
		order = append(order, "item:"+elem.Text())
	}), `RegisterCallback should succeed`)

	const input = `<root><item>1</item><item>2</item></root>`
	require.NoError(t, r.ParseString(context.TODO(), input), `ParseString should succeed`)
	if !assert.Equal(t, []string{"item:1", "item:2", "root"}, order, `inner paths close before their ancestors`) {
		return
	}
}

func TestStopParsing(t *testing.T) {
	r := xmlpick.New()

	var count int
	require.NoError(t, r.RegisterCallback("/root/item/", func(h *xmlpick.Reader, _ *etree.Element) {
		count++
		if count == 2 {
			h.StopParsing()
		}
	}), `RegisterCallback should succeed`)

	var rootFired bool
	require.NoError(t, r.RegisterCallback("/root/", func(_ *xmlpick.Reader, _ *etree.Element) {
		rootFired = true
	}), `RegisterCallback should succeed`)

	const input = `<root><item>1</item><item>2</item><item>3</item></root>`
	if !assert.NoError(t, r.ParseString(context.TODO(), input), `stopping early is not an error`) {
		return
	}
	if !assert.Equal(t, 2, count, `no further matches should fire after stop`) {
		return
	}
	if !assert.False(t, rootFired, `no other path should fire after stop either`) {
		return
	}
}

func TestStopSkipsRemainingCallbacksForSamePath(t *testing.T) {
	r := xmlpick.New()

	var fired []string
	require.NoError(t, r.RegisterCallback("/root/item/", func(h *xmlpick.Reader, _ *etree.Element) {
		fired = append(fired, "a")
		h.StopParsing()
	}), `RegisterCallback should succeed`)
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, _ *etree.Element) {
		fired = append(fired, "b")
	}), `RegisterCallback should succeed`)

	require.NoError(t, r.ParseString(context.TODO(), `<root><item/></root>`), `ParseString should succeed`)
	if !assert.Equal(t, []string{"a"}, fired, `stop should abort the fan-out immediately`) {
		return
	}
}

func TestStateResetAcrossParses(t *testing.T) {
	r := xmlpick.New()

	var texts []string
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, elem *etree.Element) {
		texts = append(texts, elem.Text())
	}), `RegisterCallback should succeed`)

	require.NoError(t, r.ParseString(context.TODO(), `<root><item>first</item></root>`), `first parse should succeed`)
	require.NoError(t, r.ParseString(context.TODO(), `<other><thing/></other>`), `second parse should succeed`)
	require.NoError(t, r.ParseString(context.TODO(), `<root><item>third</item></root>`), `third parse should succeed`)

	if !assert.Equal(t, []string{"first", "third"}, texts, `no path or accumulator state should leak between parses`) {
		return
	}
}

func TestStateResetAfterFailure(t *testing.T) {
	r := xmlpick.New()

	var count int
	require.NoError(t, r.RegisterCallback("/root/item/", func(_ *xmlpick.Reader, _ *etree.Element) {
		count++
	}), `RegisterCallback should succeed`)

	require.Error(t, r.ParseString(context.TODO(), `<root><item>`), `unclosed input should fail`)
	require.NoError(t, r.ParseString(context.TODO(), `<root><item>x</item></root>`), `a fresh parse after a failure should succeed`)
	if !assert.Equal(t, 1, count, `only the successful parse should have dispatched`) {
		return
	}
}

func TestPackageLevelParse(t *testing.T) {
	var texts []string
	err := xmlpick.ParseString(context.TODO(), `<root><item>x</item></root>`, "/root/item/",
		func(_ *xmlpick.Reader, elem *etree.Element) {
			texts = append(texts, elem.Text())
		})
	require.NoError(t, err, `ParseString should succeed`)
	if !assert.Equal(t, []string{"x"}, texts, `convenience wrapper should dispatch normally`) {
		return
	}
}
